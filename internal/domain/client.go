package domain

import "time"

// Client represents a coached person whose workouts and KPI measurements
// are tracked. Workouts and measurements reference the client by ID; they
// are not embedded here.
type Client struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Age          *int      `json:"age"`
	Goals        string    `json:"goals"`
	Injuries     string    `json:"injuries"`
	SelectedKPIs []KPIType `json:"selectedKPIs"`
	Tags         []string  `json:"tags"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ClientInput is the caller-supplied subset of fields for creating a client.
// Anything left zero-valued gets a defined default from NewClient.
type ClientInput struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Age          *int      `json:"age"`
	Goals        string    `json:"goals"`
	Injuries     string    `json:"injuries"`
	SelectedKPIs []KPIType `json:"selectedKPIs"`
	Tags         []string  `json:"tags"`
	Avatar       *string   `json:"avatar"`
}

// ClientPatch carries a partial update; nil fields are left untouched.
type ClientPatch struct {
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Age          *int       `json:"age"`
	Goals        *string    `json:"goals"`
	Injuries     *string    `json:"injuries"`
	SelectedKPIs *[]KPIType `json:"selectedKPIs"`
	Tags         *[]string  `json:"tags"`
	Avatar       *string    `json:"avatar"`
}

// NewClient builds a fully populated Client from a partial input. Every
// field of the result is defined: slices are non-nil, timestamps are set,
// and a missing ID is generated.
func NewClient(in ClientInput) Client {
	now := time.Now().UTC()
	c := Client{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Age:          in.Age,
		Goals:        in.Goals,
		Injuries:     in.Injuries,
		SelectedKPIs: in.SelectedKPIs,
		Tags:         in.Tags,
		Avatar:       in.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if c.ID == 0 {
		c.ID = NextID()
	}
	if c.SelectedKPIs == nil {
		c.SelectedKPIs = []KPIType{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// Apply merges the patch into the client and refreshes UpdatedAt.
func (c *Client) Apply(patch ClientPatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Age != nil {
		c.Age = patch.Age
	}
	if patch.Goals != nil {
		c.Goals = *patch.Goals
	}
	if patch.Injuries != nil {
		c.Injuries = *patch.Injuries
	}
	if patch.SelectedKPIs != nil {
		c.SelectedKPIs = append([]KPIType{}, (*patch.SelectedKPIs)...)
	}
	if patch.Tags != nil {
		c.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.Avatar != nil {
		c.Avatar = patch.Avatar
	}
	c.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy so callers can hand out clients without
// sharing slice backing arrays with the store.
func (c Client) Clone() Client {
	out := c
	out.SelectedKPIs = append([]KPIType{}, c.SelectedKPIs...)
	out.Tags = append([]string{}, c.Tags...)
	return out
}

// HasAnyTag reports whether the client carries at least one of the given
// tags. An empty argument list never matches.
func (c Client) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		for _, own := range c.Tags {
			if own == t {
				return true
			}
		}
	}
	return false
}
