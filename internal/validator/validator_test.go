package validator

import "testing"

type sampleForm struct {
	Name   string  `json:"name" validate:"required,notblank"`
	Cost   string  `json:"cost" validate:"required,money_positive"`
	Budget string  `json:"budget" validate:"required,money_nonnegative"`
	Cycle  string  `json:"billing_cycle" validate:"required,billing_cycle"`
	Date   string  `json:"date" validate:"required,isodate"`
	Cat    string  `json:"category" validate:"required,category"`
	Usage  *string `json:"usage_frequency" validate:"omitempty,usage_frequency"`
}

func valid() sampleForm {
	return sampleForm{
		Name:   "Netflix",
		Cost:   "14.99",
		Budget: "0",
		Cycle:  "monthly",
		Date:   "2025-02-28",
		Cat:    "Entertainment",
	}
}

func TestCustomTags(t *testing.T) {
	rarely := "rarely"
	sometimes := "sometimes"

	tests := []struct {
		name      string
		mutate    func(p *sampleForm)
		wantField string
	}{
		{"valid", func(p *sampleForm) {}, ""},
		{"valid usage", func(p *sampleForm) { p.Usage = &rarely }, ""},
		{"blank name", func(p *sampleForm) { p.Name = "   " }, "name"},
		{"zero cost", func(p *sampleForm) { p.Cost = "0" }, "cost"},
		{"negative cost", func(p *sampleForm) { p.Cost = "-5" }, "cost"},
		{"garbage cost", func(p *sampleForm) { p.Cost = "abc" }, "cost"},
		{"sub-cent cost", func(p *sampleForm) { p.Cost = "0.001" }, "cost"},
		{"three decimals cost", func(p *sampleForm) { p.Cost = "14.999" }, "cost"},
		{"trailing zero decimals", func(p *sampleForm) { p.Cost = "14.990" }, ""},
		{"largest cost", func(p *sampleForm) { p.Cost = "9999999999.99" }, ""},
		{"cost beyond column", func(p *sampleForm) { p.Cost = "1e12" }, "cost"},
		{"budget beyond column", func(p *sampleForm) { p.Budget = "10000000000" }, "budget"},
		{"sub-cent budget", func(p *sampleForm) { p.Budget = "0.005" }, "budget"},
		{"negative budget", func(p *sampleForm) { p.Budget = "-1" }, "budget"},
		{"weekly cycle", func(p *sampleForm) { p.Cycle = "weekly" }, "billing_cycle"},
		{"bad date", func(p *sampleForm) { p.Date = "2025-02-30" }, "date"},
		{"unknown category", func(p *sampleForm) { p.Cat = "Food" }, "category"},
		{"unknown usage", func(p *sampleForm) { p.Usage = &sometimes }, "usage_frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := Validate.Struct(p)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error on %s", tt.wantField)
			}
			if !containsField(err, tt.wantField) {
				t.Fatalf("error %v does not mention field %s", err, tt.wantField)
			}
		})
	}
}
