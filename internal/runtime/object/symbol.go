package object

import "sync"

// Symbol is an interned name. All Symbols are unique per name, so pointer
// equality suffices for comparison — this is what lets instance-variable
// and method tables key off raw pointers instead of string comparison
//.
type Symbol struct {
	name string
}

// Name returns the symbol's text.
func (s *Symbol) Name() string { return s.name }

var (
	internMu sync.Mutex
	interned = map[string]*Symbol{}
)

// Intern returns the unique Symbol for name, creating it on first use.
func Intern(name string) *Symbol {
	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := interned[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	interned[name] = s
	return s
}
