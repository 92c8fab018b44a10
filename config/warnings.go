package config

// Warner is implemented by configs whose missing values degrade the service
// instead of stopping it.
type Warner interface {
	Warnings() []string
}

// CollectWarnings gathers the non-fatal configuration problems detected at
// startup, in the order the configs are passed.
func CollectWarnings(warners ...Warner) []string {
	var all []string
	for _, w := range warners {
		all = append(all, w.Warnings()...)
	}
	return all
}
