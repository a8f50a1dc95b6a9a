package eval

import (
	"github.com/freeeve/fselect/internal/archivefs"
	"github.com/freeeve/fselect/internal/gitignorefs"
	"github.com/freeeve/fselect/internal/logging"
	"github.com/freeeve/fselect/internal/media"
	"github.com/freeeve/fselect/internal/userres"
)

// Evaluator holds the collaborators and per-run caches that travel with a
// single traversal (spec.md §5: "live on the evaluator instance"). It is
// built once per Run and discarded afterward.
type Evaluator struct {
	users    userres.Resolver
	archives archivefs.Reader
	images   media.ImageProbe
	audio    media.AudioProbe
	log      *logging.Logger

	gitignoreCache map[string][]*gitignorefs.Filter

	found    int
	writeErr error
}

// New builds an Evaluator with the default, real collaborators.
func New(log *logging.Logger) *Evaluator {
	return &Evaluator{
		users:          userres.New(),
		archives:       archivefs.ZipReader{},
		images:         media.NewImageProbe(),
		audio:          media.NewAudioProbe(),
		log:            log,
		gitignoreCache: make(map[string][]*gitignorefs.Filter),
	}
}
