package ocr

import (
	"fmt"
	"log"
)

// Engines holds the registered backends in fixed priority order. The order
// doubles as the substitution order when a requested provider has no
// credentials: chat providers first (both entry points can use them), the
// dedicated OCR service last.
type Engines struct {
	list []Engine
}

func NewEngines(es ...Engine) *Engines {
	return &Engines{list: es}
}

// Get returns the registered engine for a provider, configured or not.
func (e *Engines) Get(p Provider) (Engine, error) {
	for _, eng := range e.list {
		if eng.Name() == p {
			return eng, nil
		}
	}
	return nil, fmt.Errorf("unknown provider %q; use openai|anthropic|gemini|vision", p)
}

// IsAvailable reports whether the provider is registered and has credentials.
func (e *Engines) IsAvailable(p Provider) bool {
	eng, err := e.Get(p)
	return err == nil && eng.Available()
}

// Available lists providers with credentials, in priority order. Lets callers
// build provider-selection UI without attempting a call.
func (e *Engines) Available() []Provider {
	out := []Provider{}
	for _, eng := range e.list {
		if eng.Available() {
			out = append(out, eng.Name())
		}
	}
	return out
}

// resolve picks the engine for a request. Requested-but-unconfigured is
// substituted silently (with a log notice) by the first available engine;
// nil means no provider at all is configured and the caller must use mock
// mode. An empty provider means "no preference".
func (e *Engines) resolve(requested Provider) (Engine, error) {
	if requested != "" {
		eng, err := e.Get(requested)
		if err != nil {
			return nil, err
		}
		if eng.Available() {
			return eng, nil
		}
	}
	for _, eng := range e.list {
		if eng.Available() {
			if requested != "" {
				log.Printf("ocr: provider %s unavailable, substituting %s", requested, eng.Name())
			}
			return eng, nil
		}
	}
	return nil, nil
}
