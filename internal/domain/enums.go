package domain

// Mode selects how much of the solution space a solve call explores.
type Mode int

const (
	FindOne Mode = iota // stop at the first solution
	FindAll             // enumerate every solution
)

func (m Mode) String() string {
	switch m {
	case FindOne:
		return "first"
	case FindAll:
		return "all"
	}
	return "unknown"
}
