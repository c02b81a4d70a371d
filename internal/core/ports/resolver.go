package ports

// InputResolver defines the interface for resolving the paths handed to the tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves the given paths and glob patterns to a list of concrete paths.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
