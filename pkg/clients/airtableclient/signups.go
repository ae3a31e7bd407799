package airtableclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// signupFields mirrors the columns of the signups table. Driver is a
// checkbox, which Airtable omits when unticked. Trip ID is a formula column
// exposing the linked trip's record ID so signups can be filtered server
// side; formulas cannot reference linked record IDs directly.
type signupFields struct {
	Name   string `json:"Name"`
	Driver bool   `json:"Driver"`
	Status string `json:"Status"`
	TripID string `json:"Trip ID"`
}

type signupRecord struct {
	ID     string       `json:"id"`
	Fields signupFields `json:"fields"`
}

type signupPage struct {
	Records []signupRecord `json:"records"`
	Offset  string         `json:"offset"`
}

type signupPatch struct {
	Fields signupPatchFields `json:"fields"`
}

type signupPatchFields struct {
	Status string `json:"Status"`
}

func (r signupRecord) toSignup() model.Signup {
	return model.Signup{
		ID:     r.ID,
		TripID: r.Fields.TripID,
		Name:   r.Fields.Name,
		Driver: r.Fields.Driver,
		Status: r.Fields.Status,
	}
}

// ListSignupsForTrip returns every signup linked to the trip, following
// Airtable's pagination until the final page
func (c *Client) ListSignupsForTrip(ctx context.Context, tripID string) ([]model.Signup, error) {
	formula := fmt.Sprintf("{Trip ID}='%s'", strings.ReplaceAll(tripID, "'", "\\'"))

	var signups []model.Signup
	offset := ""

	for {
		params := url.Values{}
		params.Set("pageSize", "100")
		params.Set("filterByFormula", formula)
		if offset != "" {
			params.Set("offset", offset)
		}
		reqURL := c.tableURL(c.signupsTable) + "?" + params.Encode()

		resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
			return c.newRequest(ctx, http.MethodGet, reqURL, nil)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list signups for trip %s: %w", tripID, err)
		}

		var page signupPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode signups page: %w", err)
		}

		for _, rec := range page.Records {
			signups = append(signups, rec.toSignup())
		}

		if page.Offset == "" {
			return signups, nil
		}
		offset = page.Offset
	}
}

// UpdateSignupStatus overwrites the Status column of a single signup record.
// Other columns are left untouched.
func (c *Client) UpdateSignupStatus(ctx context.Context, signupID string, status string) error {
	payload, err := json.Marshal(signupPatch{
		Fields: signupPatchFields{Status: status},
	})
	if err != nil {
		return fmt.Errorf("failed to encode status patch: %w", err)
	}

	reqURL := c.tableURL(c.signupsTable) + "/" + url.PathEscape(signupID)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPatch, reqURL, bytes.NewReader(payload))
	})
	if err != nil {
		return fmt.Errorf("failed to update signup %s: %w", signupID, err)
	}
	resp.Body.Close()

	return nil
}
