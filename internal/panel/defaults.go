package panel

// DefaultID is the panel shown when no other panel is requested.
const DefaultID = "wire-calc"

var builtin = []Descriptor{
	{ID: "wire-calc", Label: "Wire Size Calculator", Icon: IconBolt},
	{ID: "voltage-drop", Label: "Voltage Drop Calculator", Icon: IconVoltageDrop},
	{ID: "conduit-fill", Label: "Conduit Fill Calculator", Icon: IconConduit},
	{ID: "dc-breaker", Label: "DC Breaker Sizing", Icon: IconBreaker},
	{ID: "nec-chart", Label: "NEC Reference Charts", Icon: IconChart},
	{ID: "iec-chart", Label: "IEC Reference Charts", Icon: IconChart},
	{ID: "bs7671-chart", Label: "BS 7671 Reference Charts", Icon: IconBook},
}

// Default returns the built-in calculator registry.
func Default() *Registry {
	r, err := NewRegistry(builtin...)
	if err != nil {
		panic(err)
	}
	return r
}
