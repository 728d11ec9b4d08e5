package customfields

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Time is set by number and size suffix. Possible suffixes are:
// * s: means seconds
// * ms: means milliseconds
// * us: means microseconds
// * ns: means nanoseconds
// Suffix can be in uppercase or lowercase.
// E.g. "2s" means 2 seconds, "500ms" means 500 milliseconds.
// The stored value is in nanoseconds.

type Time uint64

func (t *Time) Val() uint64 {
	return uint64(*t)
}

// Duration converts the value for use with the time package.
func (t *Time) Duration() time.Duration {
	return time.Duration(*t)
}

func (t Time) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return t.FromStr(s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.FromStr(s)
}

func (t *Time) FromStr(s string) error {
	num, suf, err := separateStr(s)
	if err != nil {
		return err
	}
	switch suf {
	case "", "ns":
		break
	case "s":
		num *= 1000
		fallthrough
	case "ms":
		num *= 1000
		fallthrough
	case "us":
		num *= 1000
	default:
		return fmt.Errorf("unknown time suffix %s", suf)
	}
	*t = Time(num)
	return nil
}

func (t Time) String() string {
	v := t.Val()
	suf := "ns"
	if v != 0 && v%1000 == 0 {
		suf = "us"
		v /= 1000
		if v%1000 == 0 {
			suf = "ms"
			v /= 1000
			if v%1000 == 0 {
				suf = "s"
				v /= 1000
			}
		}
	}
	return fmt.Sprintf("%d%s", v, suf)
}
