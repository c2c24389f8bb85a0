package geanno

import (
	"reflect"
	"testing"
)

func Test_selectHits(t *testing.T) {
	hits := func() []Hit {
		return []Hit{
			{Label: "A", Distance: 50, ord: 0},
			{Label: "B", Distance: -10, ord: 1},
			{Label: "C", Distance: 30, ord: 2},
		}
	}

	type args struct {
		hits   []Hit
		policy HitPolicy
	}
	tests := []struct {
		name string
		args args
		want []Hit
	}{
		{
			"all hits ordered by absolute distance",
			args{hits(), HitPolicy{Kind: HitsAll}},
			[]Hit{
				{Label: "B", Distance: -10, ord: 1},
				{Label: "C", Distance: 30, ord: 2},
				{Label: "A", Distance: 50, ord: 0},
			},
		},
		{
			"closest keeps one hit",
			args{hits(), HitPolicy{Kind: HitsClosest}},
			[]Hit{
				{Label: "B", Distance: -10, ord: 1},
			},
		},
		{
			"count truncates to the closest N",
			args{hits(), HitPolicy{Kind: HitsCount, Count: 2}},
			[]Hit{
				{Label: "B", Distance: -10, ord: 1},
				{Label: "C", Distance: 30, ord: 2},
			},
		},
		{
			"count past the number of hits keeps them all",
			args{hits(), HitPolicy{Kind: HitsCount, Count: 9}},
			[]Hit{
				{Label: "B", Distance: -10, ord: 1},
				{Label: "C", Distance: 30, ord: 2},
				{Label: "A", Distance: 50, ord: 0},
			},
		},
		{
			"ties at the same absolute distance keep load order",
			args{
				[]Hit{
					{Label: "late", Distance: 10, ord: 5},
					{Label: "early", Distance: -10, ord: 2},
				},
				HitPolicy{Kind: HitsAll},
			},
			[]Hit{
				{Label: "early", Distance: -10, ord: 2},
				{Label: "late", Distance: 10, ord: 5},
			},
		},
		{
			"closest of no hits is no hits",
			args{nil, HitPolicy{Kind: HitsClosest}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectHits(tt.args.hits, tt.args.policy)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selectHits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHit_String(t *testing.T) {
	tests := []struct {
		name string
		hit  Hit
		want string
	}{
		{
			"label with a negative distance",
			Hit{Label: "MFSD8", Distance: -1200},
			"MFSD8(-1200)",
		},
		{
			"label with a zero distance",
			Hit{Label: "E045", Distance: 0},
			"E045(0)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hit.String(); got != tt.want {
				t.Errorf("Hit.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
