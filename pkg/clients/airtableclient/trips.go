package airtableclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/calebmorton/trip-roster/pkg/core/model"
)

// tripFields mirrors the columns of the trips table. Airtable omits empty
// fields from the JSON entirely, so absent columns decode to zero values.
type tripFields struct {
	Name              string `json:"Name"`
	Capacity          int    `json:"Capacity"`
	DriverSlots       int    `json:"Driver Slots"`
	NonDriverCapacity int    `json:"Non-Driver Capacity"`
}

type tripRecord struct {
	ID     string     `json:"id"`
	Fields tripFields `json:"fields"`
}

type tripPage struct {
	Records []tripRecord `json:"records"`
	Offset  string       `json:"offset"`
}

func (r tripRecord) toTrip() model.Trip {
	return model.Trip{
		ID:                r.ID,
		Name:              r.Fields.Name,
		Capacity:          r.Fields.Capacity,
		DriverSlots:       r.Fields.DriverSlots,
		NonDriverCapacity: r.Fields.NonDriverCapacity,
	}
}

// ListTrips returns every trip in the trips table, following Airtable's
// pagination until the final page
func (c *Client) ListTrips(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	offset := ""

	for {
		params := url.Values{}
		params.Set("pageSize", "100")
		if offset != "" {
			params.Set("offset", offset)
		}
		reqURL := c.tableURL(c.tripsTable) + "?" + params.Encode()

		resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
			return c.newRequest(ctx, http.MethodGet, reqURL, nil)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list trips: %w", err)
		}

		var page tripPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode trips page: %w", err)
		}

		for _, rec := range page.Records {
			trips = append(trips, rec.toTrip())
		}

		if page.Offset == "" {
			return trips, nil
		}
		offset = page.Offset
	}
}

// GetTrip fetches a single trip record by its Airtable record ID
func (c *Client) GetTrip(ctx context.Context, tripID string) (model.Trip, error) {
	reqURL := c.tableURL(c.tripsTable) + "/" + url.PathEscape(tripID)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, reqURL, nil)
	})
	if err != nil {
		return model.Trip{}, fmt.Errorf("failed to fetch trip %s: %w", tripID, err)
	}
	defer resp.Body.Close()

	var rec tripRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return model.Trip{}, fmt.Errorf("failed to decode trip %s: %w", tripID, err)
	}

	return rec.toTrip(), nil
}
