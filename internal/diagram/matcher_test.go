package diagram

import "testing"

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return c
}

func TestMatchNotNeeded(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: false, Category: CategoryCircle, Subcategory: "tangent"})
	if res.Sample != nil || res.Score != 0 {
		t.Fatalf("expected no match, got %+v", res)
	}
	if res.Reason != "not needed" {
		t.Errorf("reason = %q", res.Reason)
	}
}

func TestMatchIllustrationAlwaysNil(t *testing.T) {
	c := loadCatalog(t)
	reqs := []Requirement{
		{Needed: true, Category: CategoryIllustration},
		{Needed: true, Category: CategoryIllustration, Subcategory: "basic"},
		{Needed: true, Category: CategoryIllustration, Tags: []string{"triangle"}, Description: "삼각형"},
	}
	for i, req := range reqs {
		if res := c.Match(req); res.Sample != nil || res.Score != 0 {
			t.Errorf("case %d: expected nil template, got %+v", i, res)
		}
	}
}

func TestMatchExact(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: true, Category: CategoryCircle, Subcategory: "tangent"})
	if res.Sample == nil {
		t.Fatal("expected a template")
	}
	if res.Score != 1.0 || res.Reason != "exact match" {
		t.Errorf("score=%v reason=%q", res.Score, res.Reason)
	}
	if res.Sample.Name != "원-접선" {
		t.Errorf("name = %q, want 원-접선", res.Sample.Name)
	}
}

func TestMatchCategoryFallsBackToBasic(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: true, Category: CategoryTriangle, Subcategory: "obtuse"})
	if res.Sample == nil {
		t.Fatal("expected a template")
	}
	if res.Score != 0.7 || res.Reason != "category match" {
		t.Errorf("score=%v reason=%q", res.Score, res.Reason)
	}
	if res.Sample.Subcategory != "basic" {
		t.Errorf("subcategory = %q, want basic", res.Sample.Subcategory)
	}
}

func TestMatchTags(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: true, Tags: []string{"triangle", "right_angle"}})
	if res.Sample == nil {
		t.Fatal("expected a template")
	}
	if res.Reason != "tag match" {
		t.Errorf("reason = %q", res.Reason)
	}
	// 삼각형-직각 carries exactly these two tags: overlap 2/2
	if res.Sample.Name != "삼각형-직각" {
		t.Errorf("name = %q", res.Sample.Name)
	}
	if res.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", res.Score)
	}
}

func TestMatchTagsPartialOverlap(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: true, Tags: []string{"right_angle", "dotted_line"}})
	if res.Sample == nil {
		t.Fatal("expected a template")
	}
	// 삼각형-직각 {triangle,right_angle}: 1/2 beats 원-접선's 1/3
	if res.Sample.Name != "삼각형-직각" {
		t.Errorf("name = %q", res.Sample.Name)
	}
	if res.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", res.Score)
	}
}

func TestMatchKeyword(t *testing.T) {
	c := loadCatalog(t)
	tests := []struct {
		desc string
		name string
	}{
		{"원에 접선을 그은 그림", "원-접선"},
		{"직각삼각형의 빗변을 구하는 문제", "삼각형-직각"},
		{"이차함수 그래프를 그리시오", "그래프-이차함수"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := c.Match(Requirement{Needed: true, Description: tt.desc})
			if res.Sample == nil {
				t.Fatal("expected a template")
			}
			if res.Score != 0.5 || res.Reason != "keyword match" {
				t.Errorf("score=%v reason=%q", res.Score, res.Reason)
			}
			if res.Sample.Name != tt.name {
				t.Errorf("name = %q, want %q", res.Sample.Name, tt.name)
			}
		})
	}
}

func TestMatchNothing(t *testing.T) {
	c := loadCatalog(t)
	res := c.Match(Requirement{Needed: true, Description: "아무 관련 없는 내용"})
	if res.Sample != nil || res.Score != 0 || res.Reason != "no match" {
		t.Errorf("got %+v", res)
	}
}

func TestMatchAllElementWise(t *testing.T) {
	c := loadCatalog(t)
	reqs := []Requirement{
		{Needed: false},
		{Needed: true, Category: CategoryCircle, Subcategory: "tangent"},
		{Needed: true, Category: CategoryIllustration},
	}
	out := c.MatchAll(reqs)
	if len(out) != len(reqs) {
		t.Fatalf("len = %d, want %d", len(out), len(reqs))
	}
	if out[0].Sample != nil || out[1].Sample == nil || out[2].Sample != nil {
		t.Errorf("unexpected batch results: %+v", out)
	}
	if out[1].Score != 1.0 {
		t.Errorf("score = %v", out[1].Score)
	}
}

func TestCatalogScoresInRange(t *testing.T) {
	c := loadCatalog(t)
	reqs := []Requirement{
		{Needed: true, Category: CategoryGraph},
		{Needed: true, Tags: []string{"axis"}},
		{Needed: true, Description: "좌표평면 위의 점"},
	}
	for i, req := range reqs {
		res := c.Match(req)
		if res.Score < 0 || res.Score > 1 {
			t.Errorf("case %d: score %v out of [0,1]", i, res.Score)
		}
	}
}
