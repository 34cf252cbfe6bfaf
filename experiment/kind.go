package experiment

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the experiment kind enumerate
type Kind int

const (
	// ShockTube is a shock tube ignition delay experiment
	ShockTube Kind = iota
	// RCM is a rapid compression machine experiment
	RCM
)

func (k Kind) String() string {
	switch k {
	case ShockTube:
		return "ST"
	case RCM:
		return "RCM"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "ST":
		*k = ShockTube
	case "RCM":
		*k = RCM
	default:
		return errors.New("unknown value")
	}
	return nil
}
