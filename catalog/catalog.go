package catalog

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/status"
	"gopkg.in/yaml.v3"
)

// Catalog holds the domains created from one document.
type Catalog struct {
	domains map[string]*status.TypedDomain[Value]
	tables  map[string]*table
	order   []string
}

// LoadFile reads and loads the catalog document at path.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeNotFound, "failed to read catalog"),
			"path", path,
		)
	}
	return Load(ctx, bytes.NewReader(data))
}

// Load decodes a catalog document, validates it and registers its domains.
// Nothing is registered unless the whole document is valid.
func Load(ctx context.Context, r io.Reader) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode catalog")
	}

	if err := validate(ctx, &doc); err != nil {
		return nil, err
	}

	tables, err := buildTables(&doc)
	if err != nil {
		return nil, err
	}

	ids, err := resolveIDs(&doc)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		domains: make(map[string]*status.TypedDomain[Value], len(doc.Domains)),
		tables:  tables,
	}
	for _, spec := range doc.Domains {
		var opts []status.DomainOption
		if id, ok := ids[spec.Name]; ok {
			opts = append(opts, status.WithID(id))
		}

		d, err := status.DefineDomain[Value](spec.Name, tables[spec.Name], opts...)
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeAlreadyExists, "failed to register domain"),
				"domain", spec.Name,
			)
		}
		c.domains[spec.Name] = d
		c.order = append(c.order, spec.Name)
	}

	status.Logger().Info("status catalog loaded", "domains", c.order)
	return c, nil
}

// resolveIDs parses the fixed domain identities of the document and checks
// that none of them is taken, so that registration does not stop halfway.
func resolveIDs(doc *Document) (map[string]status.DomainID, error) {
	ids := make(map[string]status.DomainID)
	seen := make(map[status.DomainID]string)
	for _, spec := range doc.Domains {
		if spec.UUID == "" {
			continue
		}
		u, err := uuid.Parse(spec.UUID)
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "invalid domain uuid"),
				"domain", spec.Name,
			)
		}

		id := status.IDFromUUID(u)
		if other, ok := seen[id]; ok {
			return nil, errors.WithContextMap(
				errors.New(errors.CodeInvalidConfig, "domains share an identity"),
				map[string]interface{}{"domain": spec.Name, "other": other},
			)
		}
		if existing, ok := status.LookupDomain(id); ok {
			return nil, errors.WithContextMap(
				errors.New(errors.CodeAlreadyExists, "domain identity already registered"),
				map[string]interface{}{"domain": spec.Name, "registered": existing.Name()},
			)
		}
		seen[id] = spec.Name
		ids[spec.Name] = id
	}
	return ids, nil
}

// buildTables checks the parts of the document the schema cannot express
// and converts every domain to its table.
func buildTables(doc *Document) (map[string]*table, error) {
	tables := make(map[string]*table, len(doc.Domains))
	for _, spec := range doc.Domains {
		if _, ok := tables[spec.Name]; ok {
			return nil, errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "duplicate domain in catalog"),
				"domain", spec.Name,
			)
		}

		t := &table{
			domain:  spec.Name,
			entries: make(map[Value]entry, len(spec.Codes)),
			byName:  make(map[string]Value, len(spec.Codes)),
		}
		for _, code := range spec.Codes {
			v := Value(code.Value)
			if _, ok := t.entries[v]; ok {
				return nil, errors.WithContextMap(
					errors.New(errors.CodeInvalidConfig, "duplicate code value"),
					map[string]interface{}{"domain": spec.Name, "value": code.Value},
				)
			}
			if _, ok := t.byName[code.Name]; ok {
				return nil, errors.WithContextMap(
					errors.New(errors.CodeInvalidConfig, "duplicate code name"),
					map[string]interface{}{"domain": spec.Name, "name": code.Name},
				)
			}

			g := status.ErrcUnknown
			if code.Success {
				g = status.ErrcSuccess
			}
			if code.Generic != "" {
				parsed, ok := status.ParseErrc(code.Generic)
				if !ok {
					return nil, errors.WithContextMap(
						errors.New(errors.CodeInvalidConfig, "unknown generic condition"),
						map[string]interface{}{"domain": spec.Name, "code": code.Name, "generic": code.Generic},
					)
				}
				g = parsed
			}

			t.entries[v] = entry{
				name:        code.Name,
				message:     code.Message,
				success:     code.Success,
				generic:     g,
				equivalents: code.Equivalents,
			}
			t.byName[code.Name] = v
		}
		tables[spec.Name] = t
	}
	return tables, nil
}

// Domain returns the domain with the given name.
func (c *Catalog) Domain(name string) (*status.TypedDomain[Value], bool) {
	d, ok := c.domains[name]
	return d, ok
}

// Domains returns the names of the catalog's domains in document order.
func (c *Catalog) Domains() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Code returns the status code with the symbolic name code in domain.
func (c *Catalog) Code(domain, code string) (status.StatusCode[Value], bool) {
	d, ok := c.domains[domain]
	if !ok {
		return status.StatusCode[Value]{}, false
	}
	v, ok := c.tables[domain].byName[code]
	if !ok {
		return status.StatusCode[Value]{}, false
	}
	return d.Code(v), true
}
