// Package enderef implements ga4gh_enref/ga4gh_deref: collapsing an
// Allele or copy-number object's inlined SequenceLocation into a bare
// ga4gh identifier backed by an objectstore.Store, and the reverse
// expansion. Unlike the original Python's enderef, which walks an
// arbitrary pydantic object graph via a class-to-referable-attribute
// map (cra_map), Go's static typing makes the closed set of
// identifiable, location-holding VRS types explicit: each gets its
// own Enref/Deref function instead of one reflective walker.
package enderef

import (
	"context"
	"encoding/json"

	"github.com/ga4gh/vrs-go/internal/digest"
	"github.com/ga4gh/vrs-go/internal/objectstore"
	"github.com/ga4gh/vrs-go/internal/vrs"
)

// identifyAndStore computes loc's ga4gh identifier, stores its JSON
// under that id, and returns the id. The location's SequenceReference
// slot is left as it is, inlined or referenced; it is never enreffed
// or stored on its own.
func identifyAndStore(ctx context.Context, store objectstore.Store, loc *vrs.SequenceLocation) (string, error) {
	id, err := digest.Identify(loc)
	if err != nil {
		return "", err
	}
	loc.ID = id
	loc.Digest = id[len(id)-32:]
	blob, err := json.Marshal(loc)
	if err != nil {
		return "", err
	}
	if err := store.Put(ctx, id, blob); err != nil {
		return "", err
	}
	return id, nil
}

func resolve(ctx context.Context, store objectstore.Store, ref vrs.Ref[vrs.SequenceLocation]) (vrs.SequenceLocation, error) {
	if loc, ok := ref.Value(); ok {
		return loc, nil
	}
	blob, err := store.Get(ctx, ref.ID())
	if err != nil {
		return vrs.SequenceLocation{}, err
	}
	var loc vrs.SequenceLocation
	if err := json.Unmarshal(blob, &loc); err != nil {
		return vrs.SequenceLocation{}, err
	}
	return loc, nil
}

// EnrefAllele replaces a's inlined Location with a reference to it in
// store, assigning both the location's and the allele's own ga4gh
// identifiers along the way. It is a no-op on Location if a.Location
// is already a reference.
func EnrefAllele(ctx context.Context, store objectstore.Store, a *vrs.Allele) error {
	if loc, ok := a.Location.Value(); ok {
		id, err := identifyAndStore(ctx, store, &loc)
		if err != nil {
			return err
		}
		a.Location = vrs.ByID[vrs.SequenceLocation](id)
	}
	id, err := digest.Identify(a)
	if err != nil {
		return err
	}
	a.ID = id
	a.Digest = id[len(id)-32:]
	return nil
}

// DerefAllele replaces a's referenced Location with the inlined
// object fetched from store. Returns *vrserr.UnknownReferenceError if
// the reference is not present in store.
func DerefAllele(ctx context.Context, store objectstore.Store, a *vrs.Allele) error {
	loc, err := resolve(ctx, store, a.Location)
	if err != nil {
		return err
	}
	a.Location = vrs.Inline(loc)
	return nil
}

// EnrefCopyNumberCount is EnrefAllele's analogue for CopyNumberCount,
// whose location-holding field is named Subject.
func EnrefCopyNumberCount(ctx context.Context, store objectstore.Store, c *vrs.CopyNumberCount) error {
	if loc, ok := c.Subject.Value(); ok {
		id, err := identifyAndStore(ctx, store, &loc)
		if err != nil {
			return err
		}
		c.Subject = vrs.ByID[vrs.SequenceLocation](id)
	}
	id, err := digest.Identify(c)
	if err != nil {
		return err
	}
	c.ID = id
	c.Digest = id[len(id)-32:]
	return nil
}

// DerefCopyNumberCount is DerefAllele's analogue for CopyNumberCount.
func DerefCopyNumberCount(ctx context.Context, store objectstore.Store, c *vrs.CopyNumberCount) error {
	loc, err := resolve(ctx, store, c.Subject)
	if err != nil {
		return err
	}
	c.Subject = vrs.Inline(loc)
	return nil
}

// EnrefCopyNumberChange is EnrefAllele's analogue for CopyNumberChange.
func EnrefCopyNumberChange(ctx context.Context, store objectstore.Store, c *vrs.CopyNumberChange) error {
	if loc, ok := c.Subject.Value(); ok {
		id, err := identifyAndStore(ctx, store, &loc)
		if err != nil {
			return err
		}
		c.Subject = vrs.ByID[vrs.SequenceLocation](id)
	}
	id, err := digest.Identify(c)
	if err != nil {
		return err
	}
	c.ID = id
	c.Digest = id[len(id)-32:]
	return nil
}

// DerefCopyNumberChange is DerefAllele's analogue for CopyNumberChange.
func DerefCopyNumberChange(ctx context.Context, store objectstore.Store, c *vrs.CopyNumberChange) error {
	loc, err := resolve(ctx, store, c.Subject)
	if err != nil {
		return err
	}
	c.Subject = vrs.Inline(loc)
	return nil
}
