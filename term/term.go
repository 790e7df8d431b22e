// Copyright 2015 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package term provides the RDF term type consumed from a parser and
// produced by a serializer. It is the boundary type between inferray's
// saturation core and its external collaborators.
package term

import (
	"fmt"
	"strings"

	"github.com/pborman/uuid"
)

// Kind represents the kind of an RDF term.
type Kind uint8

const (
	// IRI is a resource identified by an IRI.
	IRI Kind = iota
	// Blank is a blank node.
	Blank
	// Literal is a literal value, optionally typed.
	Literal
)

// String pretty prints a Kind.
func (k Kind) String() string {
	switch k {
	case IRI:
		return "IRI"
	case Blank:
		return "BLANK"
	case Literal:
		return "LITERAL"
	default:
		return "UNKNOWN"
	}
}

// Term is an RDF term: an IRI, a blank node, or a literal. It is the unit
// the dictionary interns; once interned, its ID is the dictionary id
// assigned to it, which lets a Term double as a gonum graph.Node without
// a second id scheme.
type Term struct {
	kind     Kind
	value    string
	datatype string
	id       uint64
	hasID    bool
}

// NewIRI creates a new IRI term.
func NewIRI(iri string) (Term, error) {
	if iri == "" {
		return Term{}, fmt.Errorf("term.NewIRI: empty IRI")
	}
	if strings.ContainsAny(iri, " \t\n\r<>") {
		return Term{}, fmt.Errorf("term.NewIRI(%q): IRIs cannot contain whitespace or angle brackets", iri)
	}
	return Term{kind: IRI, value: iri}, nil
}

// NewBlankNode creates a new blank node with a fresh, globally unique label.
func NewBlankNode() Term {
	return Term{kind: Blank, value: uuid.New()}
}

// NewBlankNodeWithLabel creates a blank node term reusing a caller-supplied
// label (e.g. one already assigned by a parser).
func NewBlankNodeWithLabel(label string) (Term, error) {
	if label == "" {
		return Term{}, fmt.Errorf("term.NewBlankNodeWithLabel: empty label")
	}
	return Term{kind: Blank, value: label}, nil
}

// NewLiteral creates a literal term with an explicit datatype IRI. An empty
// datatype defaults to xsd:string.
func NewLiteral(value, datatype string) Term {
	if datatype == "" {
		datatype = XSDString
	}
	return Term{kind: Literal, value: value, datatype: datatype}
}

// Well-known datatype IRIs used by the reserved vocabulary (spec.md §6).
const (
	XSDString            = "http://www.w3.org/2001/XMLSchema#string"
	XSDNonNegativeInteger = "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"
)

// Kind reports whether t is an IRI, a blank node, or a literal.
func (t Term) Kind() Kind { return t.kind }

// Value returns the IRI string, the blank node label, or the literal's
// lexical form, depending on Kind.
func (t Term) Value() string { return t.value }

// Datatype returns the literal's datatype IRI. It is empty for IRIs and
// blank nodes.
func (t Term) Datatype() string { return t.datatype }

// Key returns a value suitable for use as a map key that uniquely
// identifies this term regardless of dictionary assignment.
func (t Term) Key() string {
	switch t.kind {
	case Literal:
		return "L:" + t.datatype + ":" + t.value
	case Blank:
		return "B:" + t.value
	default:
		return "I:" + t.value
	}
}

// String pretty prints the term using badwolf-style angle-bracket/quote
// notation: IRIs and blanks as <value>, literals as "value"^^<datatype>.
func (t Term) String() string {
	switch t.kind {
	case Literal:
		return fmt.Sprintf("%q^^<%s>", t.value, t.datatype)
	default:
		return fmt.Sprintf("<%s>", t.value)
	}
}

// WithID returns a copy of t carrying the dictionary-assigned id. It
// implements the precedent set by gonum.org/v1/gonum/graph/formats/rdf.Term,
// whose UID field lets a Term double as a graph.Node.
func (t Term) WithID(id uint64) Term {
	t.id = id
	t.hasID = true
	return t
}

// ID returns the dictionary-assigned id as an int64, satisfying
// gonum.org/v1/gonum/graph.Node. Panics if the term was never encoded;
// this is a programmer error per spec.md §7, not a recoverable one.
func (t Term) ID() int64 {
	if !t.hasID {
		panic("term.Term.ID: term has not been assigned a dictionary id")
	}
	return int64(t.id)
}

// Triple is a parser-facing (subject, predicate, object) statement, the
// unit InfGraph.Load consumes.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// String pretty prints the triple.
func (t Triple) String() string {
	return fmt.Sprintf("%s\t%s\t%s", t.Subject, t.Predicate, t.Object)
}
