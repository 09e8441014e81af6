package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/meta"
)

type RatingSystem struct {

	// Timestamp when the rating system was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// A description of the rating system.
	// Required: true
	Description *string `json:"Description"`

	// Unique identifier for the rating system.
	// Required: true
	ID *string `json:"Id"`

	// Name of the rating system.
	// Required: true
	Name *string `json:"Name"`

	// site Url
	SiteURL string `json:"SiteUrl,omitempty"`

	// Timestamp when the rating system was last updated.
	// Required: true
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}

// bindDateTime maps a storage text attribute to a *strfmt.DateTime
// field, stored in RFC 3339 form.
func bindDateTime(attr *meta.AttributeMeta, get func(*RatingSystem) **strfmt.DateTime) meta.Binding[RatingSystem] {
	return meta.Bind(attr,
		func(m *RatingSystem, v datastore.Value) error {
			if v.IsNull() {
				*get(m) = nil
				return nil
			}
			dt, err := strfmt.ParseDateTime(v.Text())
			if err != nil {
				return err
			}
			*get(m) = &dt
			return nil
		},
		func(m *RatingSystem) (datastore.Value, error) {
			dt := *get(m)
			if dt == nil {
				return datastore.Null(), nil
			}
			return datastore.Text(dt.String()), nil
		})
}

// RatingSystemMeta assembles the model meta for RatingSystem.
func RatingSystemMeta() (*meta.ModelMeta[RatingSystem], error) {
	id, err := meta.NewAttributeMeta("id", "ID")
	if err != nil {
		return nil, err
	}
	name, err := meta.NewAttributeMeta("name", "Name")
	if err != nil {
		return nil, err
	}
	description, err := meta.NewAttributeMeta("description", "Description")
	if err != nil {
		return nil, err
	}
	siteURL, err := meta.NewAttributeMeta("siteUrl", "SiteURL")
	if err != nil {
		return nil, err
	}
	createdAt, err := meta.NewAttributeMeta("createdAt", "CreatedAt")
	if err != nil {
		return nil, err
	}
	updatedAt, err := meta.NewAttributeMeta("updatedAt", "UpdatedAt")
	if err != nil {
		return nil, err
	}

	return meta.NewBuilder[RatingSystem]("testmodels", "RatingSystem").
		Kind("ratingsystems").
		Add(
			meta.BindStringPtr(id,
				func(m *RatingSystem) *string { return m.ID },
				func(m *RatingSystem, v *string) { m.ID = v }),
			meta.BindStringPtr(name,
				func(m *RatingSystem) *string { return m.Name },
				func(m *RatingSystem, v *string) { m.Name = v }),
			meta.BindStringPtr(description,
				func(m *RatingSystem) *string { return m.Description },
				func(m *RatingSystem, v *string) { m.Description = v }),
			meta.BindString(siteURL,
				func(m *RatingSystem) string { return m.SiteURL },
				func(m *RatingSystem, v string) { m.SiteURL = v }),
			bindDateTime(createdAt, func(m *RatingSystem) **strfmt.DateTime { return &m.CreatedAt }),
			bindDateTime(updatedAt, func(m *RatingSystem) **strfmt.DateTime { return &m.UpdatedAt }),
		).
		Build()
}
