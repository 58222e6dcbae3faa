package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an on-disk override of the player defaults. Absent fields keep the
// value they already have.
type Tuning struct {
	Speed          *float64 `yaml:"speed"`
	JumpForce      *float64 `yaml:"jump_force"`
	MaxJumpHeight  *float64 `yaml:"max_jump_height"`
	JumpBufferTime *float64 `yaml:"jump_buffer_time"`
	DashSpeed      *float64 `yaml:"dash_speed"`
	DashMaxTime    *float64 `yaml:"dash_max_time"`
	DashResetTime  *float64 `yaml:"dash_reset_time"`
	DashPolicy     *string  `yaml:"dash_policy"`
	MaxDashLength  *float64 `yaml:"max_dash_length"`
	AnalogDeadzone *float64 `yaml:"analog_deadzone"`
}

// LoadTuning reads a tuning file from disk.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes tuning YAML and validates it.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if t.DashPolicy != nil {
		if _, err := ParseDashPolicy(*t.DashPolicy); err != nil {
			return nil, err
		}
	}
	for name, v := range map[string]*float64{
		"speed":            t.Speed,
		"jump_force":       t.JumpForce,
		"max_jump_height":  t.MaxJumpHeight,
		"jump_buffer_time": t.JumpBufferTime,
		"dash_speed":       t.DashSpeed,
		"dash_max_time":    t.DashMaxTime,
		"dash_reset_time":  t.DashResetTime,
		"max_dash_length":  t.MaxDashLength,
	} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("config: tuning %s must not be negative, got %v", name, *v)
		}
	}
	if t.AnalogDeadzone != nil && (*t.AnalogDeadzone < 0 || *t.AnalogDeadzone > 1) {
		return nil, fmt.Errorf("config: tuning analog_deadzone must be within [0, 1], got %v", *t.AnalogDeadzone)
	}
	return &t, nil
}

// Apply copies every set field onto the player and input configuration.
func (t *Tuning) Apply(p *PlayerConfig, in *InputConfig) {
	setIf(&p.Speed, t.Speed)
	setIf(&p.JumpForce, t.JumpForce)
	setIf(&p.MaxJumpHeight, t.MaxJumpHeight)
	setIf(&p.JumpBufferTime, t.JumpBufferTime)
	setIf(&p.DashSpeed, t.DashSpeed)
	setIf(&p.DashMaxTime, t.DashMaxTime)
	setIf(&p.DashResetTime, t.DashResetTime)
	setIf(&p.MaxDashLength, t.MaxDashLength)
	if t.DashPolicy != nil {
		// validated by ParseTuning
		p.DashPolicy, _ = ParseDashPolicy(*t.DashPolicy)
	}
	if in != nil {
		setIf(&in.AnalogDeadzone, t.AnalogDeadzone)
	}
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ParseDashPolicy maps "time" or "distance" to a DashPolicy.
func ParseDashPolicy(s string) (DashPolicy, error) {
	switch s {
	case "time", "":
		return DashTimeBoxed, nil
	case "distance":
		return DashDistanceBoxed, nil
	}
	return DashTimeBoxed, fmt.Errorf("config: unknown dash policy %q", s)
}
