// Package schema provides the building blocks for defining datamodel
// record schemas.
//
// This package serves as the entry point for schema definition,
// re-exporting the core contracts used by its subpackages:
//
//   - [field]: Field descriptors and builders for record attributes
//   - [mixin]: Reusable field bundles
//
// # Quick Start
//
// Define a record by embedding datamodel.Schema and declaring fields:
//
//	type Contact struct{ datamodel.Schema }
//
//	func (Contact) Mixin() []datamodel.Mixin {
//	    return []datamodel.Mixin{
//	        mixin.UUIDPK{}, // uuid primary key
//	        mixin.Time{},   // created_at and updated_at timestamps
//	    }
//	}
//
//	func (Contact) Fields() []datamodel.Field {
//	    return []datamodel.Field{
//	        field.String("name").Required(),
//	        field.String("email").Alias("mail").Match(emailRegexp),
//	        field.Int("zipcode").Range(0, 100000),
//	    }
//	}
//
// # Annotations
//
// Annotations attach named, generator-specific configuration to records
// and fields. They are carried verbatim into the loaded schema and the
// descriptor metadata.
package schema

// Annotation is used to attach arbitrary metadata to schema objects.
// The metadata is carried to external consumers such as code and
// storage-schema generators.
type Annotation interface {
	// Name defines the name of the annotation to be retrieved by.
	Name() string
}

// Merger wraps the Merge method used by annotations that can be merged
// when declared on both a mixin and a record.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation is a builtin annotation for attaching a comment to
// a schema object.
type CommentAnnotation struct {
	Text string // the comment text
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string {
	return "Comment"
}

// Comment creates a comment annotation with the given text.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}

var _ Annotation = (*CommentAnnotation)(nil)
