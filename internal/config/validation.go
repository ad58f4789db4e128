package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/vango-dev/slotkit/internal/errors"
)

// Validate checks ranges and enumerations. Failures are E103 errors whose
// detail names the offending keys.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.Layout),
		validation.Field(&c.Metrics),
		validation.Field(&c.Log),
	)
	if err != nil {
		return errors.New("E103").Wrap(err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required),
		validation.Field(&s.Port, validation.Min(0), validation.Max(65535)),
	)
}

// Validate implements validation.Validatable.
func (l LayoutConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Policy, validation.Required,
			validation.In(PolicyPermissive, PolicyWarn, PolicyStrict)),
		validation.Field(&l.Required, validation.Each(validation.Required,
			validation.In("header", "body", "footer"))),
	)
}

// Validate implements validation.Validatable.
func (m MetricsConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.When(m.Enabled, validation.Required)),
		validation.Field(&m.Namespace, validation.When(m.Enabled, validation.Required)),
	)
}

// Validate implements validation.Validatable.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
	)
}
