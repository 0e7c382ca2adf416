package incfg

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the current value of every registered option into
// target, matching struct fields through the "incfg" tag (field names are
// used when no tag is present). target must be a non-nil pointer to a
// struct.
//
//	type appConfig struct {
//	    BufferSize int    `incfg:"BUFFER_SIZE"`
//	    LogFile    string `incfg:"LOGFILENAME"`
//	}
//
// Decoding is weakly typed and runs the standard duration and
// comma-separated-slice hooks, so a string option can populate a
// time.Duration or []string field.
func (r *Registry) Unmarshal(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer, got %T", target)
	}

	r.mu.RLock()
	data := make(map[string]any, len(r.options))
	for name, opt := range r.options {
		data[name] = opt.Value()
	}
	r.mu.RUnlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "incfg",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	return nil
}
