package main

import (
	"os"

	"atcoder_judger/atcoder"
	"atcoder_judger/common"
	"atcoder_judger/lib/logger"
)

func main() {
	configPath := os.Args[1]
	node := common.InitJudgerNode(configPath)
	if _, err := atcoder.SetupJudger(node); err != nil {
		logger.Panic("can not set up judger: %s", err.Error())
	}
	node.Run()
}
