// Package probkit provides a small framework for building logic-programming
// benchmark generators, inspired by google.golang.org/protobuf/compiler/protogen.
//
// Key design principles:
//   - Library-first: generators are plain functions over a Problem
//   - Deterministic output: the same inputs always produce byte-identical text
//   - Problem abstraction: convenient line-oriented emission with dry-run support
//
// Basic usage:
//
//	em := probkit.NewEmitter(probkit.Options{Dir: "problems"})
//	p := em.NewProblem("induction.pl")
//	p.P("p(n0).")
//	if err := em.Write(); err != nil {
//	    log.Fatal(err)
//	}
package probkit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Emitter owns a set of problems to be emitted.
type Emitter struct {
	// Problems are the problems created so far, in creation order.
	Problems []*Problem

	opts Options
}

// Options configures an Emitter.
type Options struct {
	// Dir is the directory problem files are written to.
	// If empty, filenames are used as given.
	Dir string
}

// NewEmitter creates a new Emitter.
func NewEmitter(opts ...Options) *Emitter {
	em := &Emitter{}
	if len(opts) > 0 {
		em.opts = opts[0]
	}
	return em
}

// NewProblem creates a new problem to be emitted under the given filename.
func (em *Emitter) NewProblem(filename string) *Problem {
	p := &Problem{
		filename: filename,
		buf:      new(bytes.Buffer),
	}
	em.Problems = append(em.Problems, p)
	return p
}

// Write writes all problems to disk.
func (em *Emitter) Write() error {
	for _, p := range em.Problems {
		if p.skip {
			continue
		}
		path := em.path(p)
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
		if err := os.WriteFile(path, p.Content(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// DryRun returns the content of all problems without writing files.
func (em *Emitter) DryRun() map[string][]byte {
	result := make(map[string][]byte)
	for _, p := range em.Problems {
		if p.skip {
			continue
		}
		result[em.path(p)] = p.Content()
	}
	return result
}

func (em *Emitter) path(p *Problem) string {
	if em.opts.Dir == "" {
		return p.filename
	}
	return filepath.Join(em.opts.Dir, p.filename)
}

// Problem represents a single problem file to be emitted.
// Lines are accumulated in memory so that content can be previewed,
// counted, or written atomically.
type Problem struct {
	filename string
	buf      *bytes.Buffer
	lines    int
	skip     bool
}

// P prints a line to the problem. Arguments are concatenated without spaces.
func (p *Problem) P(v ...any) {
	for _, x := range v {
		switch x := x.(type) {
		case string:
			p.buf.WriteString(x)
		default:
			fmt.Fprint(p.buf, x)
		}
	}
	p.buf.WriteByte('\n')
	p.lines++
}

// Pf prints a formatted line to the problem.
func (p *Problem) Pf(format string, args ...any) {
	fmt.Fprintf(p.buf, format, args...)
	p.buf.WriteByte('\n')
	p.lines++
}

// Comment prints a "%"-style comment line recognized by Prolog and
// Datalog readers.
func (p *Problem) Comment(format string, args ...any) {
	p.Pf("%% "+format, args...)
}

// Filename returns the filename this problem is emitted under.
func (p *Problem) Filename() string { return p.filename }

// Lines returns the number of lines emitted so far.
func (p *Problem) Lines() int { return p.lines }

// Content returns the accumulated problem text.
func (p *Problem) Content() []byte {
	return p.buf.Bytes()
}

// WriteTo writes the accumulated problem text to w.
func (p *Problem) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.buf.Bytes())
	return int64(n), err
}

// Skip marks this problem to be skipped by Write and DryRun.
func (p *Problem) Skip() { p.skip = true }

// Unskip reverses Skip.
func (p *Problem) Unskip() { p.skip = false }

// OutputPath joins directory and filename.
func OutputPath(dir, filename string) string {
	return filepath.Join(dir, filename)
}
