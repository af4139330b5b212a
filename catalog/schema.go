package catalog

import (
	"context"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/jmgilman/go/errors"
)

// schemaSource constrains catalog documents.
const schemaSource = `
#Catalog: {
	domains: [...#Domain]
}

#Domain: {
	name:  =~"^[a-z][a-z0-9_]*$"
	uuid?: =~"^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
	codes: [#Code, ...#Code]
}

#Code: {
	value:    int & >=-2147483648 & <=2147483647
	name:     =~"^[A-Za-z][A-Za-z0-9_]*$"
	message:  string & !=""
	success?: bool
	generic?: =~"^[a-z][a-z_]*$"
	equivalents?: [...#Equivalent]
}

#Equivalent: {
	domain: string & !=""
	value:  int
}
`

// validate checks doc against the catalog schema. All violations are
// reported in a single error.
func validate(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return contextError(err)
	}

	cueCtx := cuecontext.New()
	schema := cueCtx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Catalog"))
	if err := schema.Err(); err != nil {
		return errors.Wrap(err, errors.CodeCUEBuildFailed, "catalog schema is invalid")
	}

	data := cueCtx.Encode(doc)
	if err := data.Err(); err != nil {
		return errors.Wrap(err, errors.CodeCUEEncodeFailed, "catalog cannot be encoded")
	}

	if err := schema.Unify(data).Validate(cue.Concrete(true), cue.All()); err != nil {
		return errors.WrapWithContext(err, errors.CodeCUEValidationFailed, "catalog failed schema validation",
			map[string]interface{}{
				"details": cueerrors.Details(err, nil),
			})
	}
	return nil
}

// contextError reports an interrupted load without blaming the document.
func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeTimeout, "catalog load timed out")
	}
	return errors.Wrap(err, errors.CodeUnavailable, "catalog load canceled")
}
