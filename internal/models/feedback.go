package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format feedback dates are stored in.
const DateLayout = "2006-01-02"

type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

// Importances lists every importance from most to least urgent.
var Importances = []Importance{ImportanceHigh, ImportanceMedium, ImportanceLow}

func (i Importance) Valid() bool {
	for _, v := range Importances {
		if v == i {
			return true
		}
	}
	return false
}

type Category string

const (
	CategorySales    Category = "Sales"
	CategoryCustomer Category = "Customer"
	CategoryResearch Category = "Research"
)

var Categories = []Category{CategorySales, CategoryCustomer, CategoryResearch}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Customer string

const (
	CustomerLoom   Customer = "Loom"
	CustomerRamp   Customer = "Ramp"
	CustomerBrex   Customer = "Brex"
	CustomerVanta  Customer = "Vanta"
	CustomerNotion Customer = "Notion"
	CustomerLinear Customer = "Linear"
	CustomerOpenAI Customer = "OpenAI"
)

var Customers = []Customer{
	CustomerLoom, CustomerRamp, CustomerBrex, CustomerVanta,
	CustomerNotion, CustomerLinear, CustomerOpenAI,
}

func (c Customer) Valid() bool {
	for _, v := range Customers {
		if v == c {
			return true
		}
	}
	return false
}

// Feedback is a single customer feedback item. Records are read-only once loaded.
type Feedback struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Importance  Importance `json:"importance"`
	Type        Category   `json:"type"`
	Customer    Customer   `json:"customer"`
	Date        string     `json:"date"`
}

// ParsedDate returns the record date as a UTC timestamp.
func (f Feedback) ParsedDate() (time.Time, error) {
	t, err := ParseDate(f.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("feedback %d: %w", f.ID, err)
	}
	return t, nil
}

// Group is a named bucket of feedback returned by the grouped view.
type Group struct {
	Name     string     `json:"name"`
	Feedback []Feedback `json:"feedback"`
}

// ParseDate accepts a plain calendar date (YYYY-MM-DD) or an RFC3339 timestamp,
// which is what browsers send when serialising a Date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		// Fallback to RFC3339 format in case it's already in that format
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("unrecognised date %q", s)
		}
	}
	return parsed.UTC(), nil
}
