package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

// Configuration holds the fixed behavior of echocat. It's compiled into the
// binary, nothing is read from disk or the environment.
type Configuration struct {
	Greeting   string     `json:"greeting" validate:"required"`
	BufferSize int        `json:"buffer_size" validate:"gte=1,lte=1048576"`
	ExitStatus ExitStatus `json:"exit_status"`
}

// ExitStatus holds the process exit statuses of failed invocations.
type ExitStatus struct {
	Usage          int `json:"usage" validate:"gte=1,lte=255"`
	UnknownCommand int `json:"unknown_command" validate:"gte=1,lte=255"`
	IOFailure      int `json:"io_failure" validate:"gte=1,lte=255"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded configuration.
func Default() *Configuration {
	out, err := Parse(defaultConfigData)
	if err != nil {
		panic(err)
	}
	return out
}
