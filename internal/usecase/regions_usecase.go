package usecase

// RegionsUsecase serves the static administrative hierarchy behind the
// cascading location picker and composes validated location labels from it.
type RegionsUsecase interface {
	// Provinces lists the top level of the hierarchy.
	Provinces() []string

	// Municipalities lists the subdivisions of a province.
	Municipalities(province string) ([]string, error)

	// Neighborhoods lists the leaves under a province and municipality.
	Neighborhoods(province, municipality string) ([]string, error)

	// ComposeLabel builds a location label from picker selections, checking
	// each segment against the hierarchy. Municipality and neighborhood are
	// optional but a segment is only valid under its selected parent.
	ComposeLabel(province, municipality, neighborhood string) (string, error)
}
