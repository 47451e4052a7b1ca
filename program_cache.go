package settings

// ProgramCache stores compiled expression programs keyed by expression
// strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache on the manager; expression rules
// compiled through the manager's engine share it.
func WithProgramCache(cache ProgramCache) ManagerOption {
	return func(cfg *managerConfig) {
		cfg.programCache = cache
	}
}
