package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/errors"
)

// catalogFile is the on-disk layout of a catalog:
//
//	promotion: Q
//	pieces:
//	  P: {special: pawn}
//	  R: {kind: slider, dirs: [[1,0],[-1,0],[0,1],[0,-1]]}
//	  W:
//	    kind: compound
//	    parts:
//	      - {kind: slider, dirs: [[1,1],[1,-1],[-1,1],[-1,-1]]}
//	      - {kind: leaper, steps: [[1,2],[2,1],[-1,2],[-2,1],[1,-2],[2,-1],[-1,-2],[-2,-1]]}
type catalogFile struct {
	Promotion string               `yaml:"promotion,omitempty"`
	Pieces    map[string]yaml.Node `yaml:"pieces"`
}

type pieceDef struct {
	Kind    string     `yaml:"kind,omitempty"`
	Special string     `yaml:"special,omitempty"`
	Dirs    [][]int    `yaml:"dirs,omitempty,flow"`
	Steps   [][]int    `yaml:"steps,omitempty,flow"`
	Parts   []pieceDef `yaml:"parts,omitempty"`
}

// LoadFile reads a catalog definition file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := load(f, path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog definition from r.
func Load(r io.Reader) (*Catalog, error) {
	return load(r, "")
}

func load(r io.Reader, name string) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, &errors.ParseError{Err: fmt.Errorf("%v: %w", err, errors.ErrInvalidCatalog), File: name}
	}
	if len(file.Pieces) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidCatalog, File: name, Expected: "pieces"}
	}

	entries := make(map[chess.Kind]Descriptor, len(file.Pieces))
	for kind, node := range file.Pieces {
		if !ValidKind(chess.Kind(kind)) {
			return nil, &errors.ParseError{
				Err:      fmt.Errorf("kind %q: %w", kind, errors.ErrInvalidCatalog),
				File:     name,
				Line:     node.Line,
				Column:   node.Column,
				Expected: "single uppercase letter",
				Got:      kind,
			}
		}
		var def pieceDef
		if err := node.Decode(&def); err != nil {
			return nil, &errors.ParseError{
				Err:    fmt.Errorf("kind %q: %v: %w", kind, err, errors.ErrInvalidCatalog),
				File:   name,
				Line:   node.Line,
				Column: node.Column,
			}
		}
		desc, err := def.descriptor()
		if err != nil {
			return nil, &errors.ParseError{
				Err:    errors.Wrapf(err, "kind %q", kind),
				File:   name,
				Line:   node.Line,
				Column: node.Column,
			}
		}
		entries[chess.Kind(kind)] = desc
	}

	var opts []Option
	if file.Promotion != "" {
		opts = append(opts, WithPromotion(chess.Kind(file.Promotion)))
	}
	c, err := New(entries, opts...)
	if err != nil {
		return nil, &errors.ParseError{Err: err, File: name}
	}
	return c, nil
}

func (def pieceDef) descriptor() (Descriptor, error) {
	if def.Special != "" {
		tag, err := ParseSpecialTag(def.Special)
		if err != nil {
			return Descriptor{}, err
		}
		return NewSpecial(tag), nil
	}

	switch def.Kind {
	case "slider":
		dirs, err := offsets(def.Dirs)
		if err != nil {
			return Descriptor{}, err
		}
		return NewSlider(dirs...), nil
	case "leaper":
		steps, err := offsets(def.Steps)
		if err != nil {
			return Descriptor{}, err
		}
		return NewLeaper(steps...), nil
	case "compound":
		parts := make([]Descriptor, 0, len(def.Parts))
		for _, p := range def.Parts {
			part, err := p.descriptor()
			if err != nil {
				return Descriptor{}, err
			}
			parts = append(parts, part)
		}
		return NewCompound(parts...), nil
	case "":
		return Descriptor{}, fmt.Errorf("missing kind or special: %w", errors.ErrInvalidCatalog)
	}
	return Descriptor{}, fmt.Errorf("unknown kind %q: %w", def.Kind, errors.ErrInvalidCatalog)
}

func offsets(pairs [][]int) ([]chess.Offset, error) {
	out := make([]chess.Offset, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("offset %v is not a [dx, dy] pair: %w", pair, errors.ErrInvalidCatalog)
		}
		out = append(out, chess.Offset{DX: pair[0], DY: pair[1]})
	}
	return out, nil
}

// Encode writes the catalog in the format read by Load.
func Encode(w io.Writer, c *Catalog) error {
	out := struct {
		Promotion string              `yaml:"promotion,omitempty"`
		Pieces    map[string]pieceDef `yaml:"pieces"`
	}{
		Promotion: string(c.promotion),
		Pieces:    make(map[string]pieceDef, len(c.entries)),
	}
	for kind, desc := range c.entries {
		out.Pieces[string(kind)] = defFor(desc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func defFor(desc Descriptor) pieceDef {
	switch desc.Shape {
	case Slider:
		return pieceDef{Kind: "slider", Dirs: pairs(desc.Offsets)}
	case Leaper:
		return pieceDef{Kind: "leaper", Steps: pairs(desc.Offsets)}
	case Compound:
		def := pieceDef{Kind: "compound"}
		for _, part := range desc.Parts {
			def.Parts = append(def.Parts, defFor(part))
		}
		return def
	}
	return pieceDef{Special: desc.Special.String()}
}

func pairs(offsets []chess.Offset) [][]int {
	out := make([][]int, len(offsets))
	for i, o := range offsets {
		out[i] = []int{o.DX, o.DY}
	}
	return out
}
