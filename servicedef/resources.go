// Package servicedef contains the JSON shapes exchanged with the demo API.
//
// Every field is optional: a key that is absent or null in a response leaves the field
// undefined, so partial-update responses can be told apart from ones with zero values.
package servicedef

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Post is a blog post.
type Post struct {
	ID     ldvalue.OptionalInt    `json:"id"`
	UserID ldvalue.OptionalInt    `json:"userId"`
	Title  ldvalue.OptionalString `json:"title"`
	Body   ldvalue.OptionalString `json:"body"`
}

// Comment is a comment on a post.
type Comment struct {
	ID     ldvalue.OptionalInt    `json:"id"`
	PostID ldvalue.OptionalInt    `json:"postId"`
	Name   ldvalue.OptionalString `json:"name"`
	Email  ldvalue.OptionalString `json:"email"`
	Body   ldvalue.OptionalString `json:"body"`
}

// Resource is the subset of Post that the listing tests care about.
type Resource struct {
	ID    ldvalue.OptionalInt    `json:"id"`
	Title ldvalue.OptionalString `json:"title"`
}

func NewPost(id, userID int, title, body string) Post {
	return Post{
		ID:     ldvalue.NewOptionalInt(id),
		UserID: ldvalue.NewOptionalInt(userID),
		Title:  ldvalue.NewOptionalString(title),
		Body:   ldvalue.NewOptionalString(body),
	}
}

func NewComment(id, postID int, name, email, body string) Comment {
	return Comment{
		ID:     ldvalue.NewOptionalInt(id),
		PostID: ldvalue.NewOptionalInt(postID),
		Name:   ldvalue.NewOptionalString(name),
		Email:  ldvalue.NewOptionalString(email),
		Body:   ldvalue.NewOptionalString(body),
	}
}

// AsObject returns the post as a JSON object containing only its defined fields. Use this
// to send a request body that omits some keys entirely.
func (p Post) AsObject() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	setInt(b, "id", p.ID)
	setInt(b, "userId", p.UserID)
	setString(b, "title", p.Title)
	setString(b, "body", p.Body)
	return b.Build()
}

// AsObject returns the comment as a JSON object containing only its defined fields.
func (c Comment) AsObject() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	setInt(b, "id", c.ID)
	setInt(b, "postId", c.PostID)
	setString(b, "name", c.Name)
	setString(b, "email", c.Email)
	setString(b, "body", c.Body)
	return b.Build()
}

func setInt(b ldvalue.ObjectBuilder, key string, v ldvalue.OptionalInt) {
	if v.IsDefined() {
		b.Set(key, ldvalue.Int(v.IntValue()))
	}
}

func setString(b ldvalue.ObjectBuilder, key string, v ldvalue.OptionalString) {
	if v.IsDefined() {
		b.Set(key, ldvalue.String(v.StringValue()))
	}
}
