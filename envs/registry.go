// Package envs registers the simzoo environments and makes them
// addressable by id strings such as "Oscillator-v1" or
// "simzoo:Oscillator-v1".
package envs

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/stable-rl/simzoo/types"
	"github.com/stable-rl/simzoo/util"
)

// Namespace is the id prefix under which all built-in environments
// are registered.
const Namespace = "simzoo"

var (
	ErrUnregisteredEnv  = errors.New("environment is not registered")
	ErrMalformedID      = errors.New("malformed environment id")
	ErrDuplicateEnv     = errors.New("environment is already registered")
	ErrUnknownNamespace = errors.New("unknown environment namespace")
	ErrNilEntryPoint    = errors.New("environment entry point is nil")
	errVersionNotFound  = errors.New("environment version is not registered")
)

var idPattern = regexp.MustCompile(`^([A-Za-z0-9]+)-v(\d+)$`)

// Spec describes a registered environment
type Spec struct {
	// ID of the form "Name-vN"
	ID string
	// Entry constructs a fresh instance of the environment
	Entry func() (types.Environment, error)
	// MaxEpisodeSteps truncates episodes when greater than zero
	MaxEpisodeSteps int
}

type registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

var defaultRegistry = &registry{
	specs: make(map[string]Spec),
}

// Register adds an environment spec to the registry
func Register(spec Spec) error {
	return defaultRegistry.register(spec)
}

// Make instantiates a registered environment, wrapped with a time
// limit when the spec sets one. The id may carry the namespace
// prefix, e.g. "simzoo:Oscillator-v1".
func Make(id string) (types.Environment, error) {
	return defaultRegistry.make(id)
}

// Lookup returns the spec registered for the given id
func Lookup(id string) (Spec, error) {
	return defaultRegistry.lookup(id)
}

// Registered returns the sorted ids of all registered environments
func Registered() []string {
	return defaultRegistry.registered()
}

func (r *registry) register(spec Spec) error {
	if spec.Entry == nil {
		return fmt.Errorf("%w: %s", ErrNilEntryPoint, spec.ID)
	}
	if _, _, err := parseID(spec.ID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.specs[spec.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEnv, spec.ID)
	}
	r.specs[spec.ID] = spec
	return nil
}

func (r *registry) make(id string) (types.Environment, error) {
	spec, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	env, err := spec.Entry()
	if err != nil {
		return nil, fmt.Errorf("failed to construct environment %s: %w", spec.ID, err)
	}
	if spec.MaxEpisodeSteps > 0 {
		return types.NewTimeLimit(env, spec.MaxEpisodeSteps), nil
	}
	return env, nil
}

func (r *registry) lookup(id string) (Spec, error) {
	bare := id
	if namespace, rest, ok := strings.Cut(id, ":"); ok {
		if namespace != Namespace {
			return Spec{}, fmt.Errorf("%w: %q (expected %q)", ErrUnknownNamespace, namespace, Namespace)
		}
		bare = rest
	}
	name, _, err := parseID(bare)
	if err != nil {
		return Spec{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if spec, ok := r.specs[bare]; ok {
		return spec, nil
	}

	// A known name with an unknown version gets a more precise error.
	versions := make([]string, 0)
	for registeredID := range r.specs {
		registeredName, _, _ := parseID(registeredID)
		if registeredName == name {
			versions = append(versions, registeredID)
		}
	}
	if len(versions) > 0 {
		sort.Strings(versions)
		return Spec{}, fmt.Errorf("%w: %s (registered versions: %s)",
			errVersionNotFound, bare, util.FriendlyList(versions, true))
	}
	return Spec{}, fmt.Errorf("%w: %s (registered environments: %s)",
		ErrUnregisteredEnv, bare, util.FriendlyList(r.registeredLocked(), true))
}

func (r *registry) registered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.registeredLocked()
}

func (r *registry) registeredLocked() []string {
	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func parseID(id string) (string, int, error) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return "", 0, fmt.Errorf("%w: %q (expected \"Name-vN\")", ErrMalformedID, id)
	}
	version := 0
	for _, c := range m[2] {
		version = version*10 + int(c-'0')
	}
	return m[1], version, nil
}
