package contention

import "fmt"

// Distribution selects how a processor picks its next module after being
// served.
type Distribution int

const (
	// DistributionUniform picks every module with the same probability.
	DistributionUniform Distribution = iota

	// DistributionNormal picks modules around the previously requested one.
	DistributionNormal
)

func (d Distribution) String() string {
	switch d {
	case DistributionUniform:
		return "uniform"
	case DistributionNormal:
		return "normal"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

func (d Distribution) valid() bool {
	return d == DistributionUniform || d == DistributionNormal
}

// ParseDistribution converts a command-line distribution argument. "u" and
// "uniform" select the uniform distribution, any other non-empty value selects
// the normal distribution. Matching is exact, so "U" selects normal.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "":
		return DistributionUniform, &ConfigError{
			Field:  "distribution",
			Value:  s,
			Reason: "must not be empty",
		}
	case "u", "uniform":
		return DistributionUniform, nil
	default:
		return DistributionNormal, nil
	}
}
