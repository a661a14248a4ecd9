package servicedef

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// The demo service copies route parameters into the records it echoes back, so an ID can
// arrive as "10" rather than 10. Integer fields are read as raw values and converted here.

func optionalIntFromValue(field string, v ldvalue.Value) (ldvalue.OptionalInt, error) {
	switch v.Type() {
	case ldvalue.NullType:
		return ldvalue.OptionalInt{}, nil
	case ldvalue.NumberType:
		if v.IsInt() {
			return ldvalue.NewOptionalInt(v.IntValue()), nil
		}
	case ldvalue.StringType:
		if n, err := strconv.Atoi(strings.TrimSpace(v.StringValue())); err == nil {
			return ldvalue.NewOptionalInt(n), nil
		}
	}
	return ldvalue.OptionalInt{}, fmt.Errorf("%s: expected an integer but got %s", field, v.JSONString())
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     ldvalue.Value          `json:"id"`
		UserID ldvalue.Value          `json:"userId"`
		Title  ldvalue.OptionalString `json:"title"`
		Body   ldvalue.OptionalString `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Post
	var err error
	if out.ID, err = optionalIntFromValue("id", raw.ID); err != nil {
		return err
	}
	if out.UserID, err = optionalIntFromValue("userId", raw.UserID); err != nil {
		return err
	}
	out.Title, out.Body = raw.Title, raw.Body
	*p = out
	return nil
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     ldvalue.Value          `json:"id"`
		PostID ldvalue.Value          `json:"postId"`
		Name   ldvalue.OptionalString `json:"name"`
		Email  ldvalue.OptionalString `json:"email"`
		Body   ldvalue.OptionalString `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Comment
	var err error
	if out.ID, err = optionalIntFromValue("id", raw.ID); err != nil {
		return err
	}
	if out.PostID, err = optionalIntFromValue("postId", raw.PostID); err != nil {
		return err
	}
	out.Name, out.Email, out.Body = raw.Name, raw.Email, raw.Body
	*c = out
	return nil
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    ldvalue.Value          `json:"id"`
		Title ldvalue.OptionalString `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := optionalIntFromValue("id", raw.ID)
	if err != nil {
		return err
	}
	*r = Resource{ID: id, Title: raw.Title}
	return nil
}
