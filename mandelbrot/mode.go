package mandelbrot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Complex is a JSON friendly complex number.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func NewComplex(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

const (
	Normal Kind = iota
	Julia
)

type Kind int

var kindNames = []string{"Normal", "Julia"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Mode selects the dynamics. In Julia mode C holds the fixed parameter; it is unused otherwise.
// The JSON form is "normal" or {"julia": {"re": .., "im": ..}}.
type Mode struct {
	Kind Kind
	C    Complex
}

func NormalMode() Mode {
	return Mode{Kind: Normal}
}

func JuliaMode(c complex128) Mode {
	return Mode{Kind: Julia, C: NewComplex(c)}
}

func (m Mode) String() string {
	if m.Kind == Julia {
		return fmt.Sprintf("{Mode Julia C: %v}", m.C.Complex128())
	}
	return fmt.Sprintf("{Mode %s}", m.Kind)
}

func (m Mode) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case Normal:
		return []byte(`"normal"`), nil
	case Julia:
		return json.Marshal(struct {
			Julia Complex `json:"julia"`
		}{m.C})
	default:
		return nil, fmt.Errorf("unknown mode: %d", m.Kind)
	}
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if name != "normal" {
			return fmt.Errorf("unknown mode: %q", name)
		}
		*m = NormalMode()
		return nil
	}

	var julia struct {
		Julia *Complex `json:"julia"`
	}
	if err := json.Unmarshal(data, &julia); err != nil {
		return fmt.Errorf("mode must be \"normal\" or {\"julia\": {...}}: %w", err)
	}
	if julia.Julia == nil {
		return fmt.Errorf("mode object is missing the julia parameter")
	}
	*m = Mode{Kind: Julia, C: *julia.Julia}
	return nil
}
