package checklist

// Count is the completion tally of one group of tasks.
type Count struct {
	Done  int
	Total int
}

// Add returns the element-wise sum of c and o.
func (c Count) Add(o Count) Count {
	return Count{Done: c.Done + o.Done, Total: c.Total + o.Total}
}

// Ratio returns Done/Total, or 0 for an empty group.
func (c Count) Ratio() float64 {
	return Aggregate(c)
}

// Percent returns the ratio as a whole percentage, rounded down.
func (c Count) Percent() int {
	if c.Total == 0 {
		return 0
	}

	return c.Done * 100 / c.Total
}

// Aggregate combines groups into one completion ratio in [0,1]:
// sum(Done)/sum(Total). An empty checklist is 0% done.
func Aggregate(groups ...Count) float64 {
	var sum Count
	for _, g := range groups {
		sum = sum.Add(g)
	}

	if sum.Total == 0 {
		return 0
	}

	return float64(sum.Done) / float64(sum.Total)
}

// ManualCount tallies the manual tasks of page.
func (s *Store) ManualCount(page string) Count {
	list := s.lists[page]

	c := Count{Total: len(list)}

	for _, t := range list {
		if t.Done {
			c.Done++
		}
	}

	return c
}

// CatalogCount tallies the resolved tasks of catalog. It is zero without an
// anchor date.
func (s *Store) CatalogCount(catalog Catalog) Count {
	var c Count

	for _, t := range s.Statuses(catalog) {
		c.Total++

		if t.Done {
			c.Done++
		}
	}

	return c
}

// PageProgress tallies a page: its manual tasks plus its catalog, if any.
func (s *Store) PageProgress(page Page) Count {
	c := s.ManualCount(page.Name)

	if page.HasCatalog() {
		if catalog, ok := CatalogFor(page.Catalog); ok {
			c = c.Add(s.CatalogCount(catalog))
		}
	}

	return c
}

// OverallProgress tallies every manual list and every built-in catalog.
// Catalogs only count once an anchor date is set.
func (s *Store) OverallProgress() Count {
	var c Count

	for _, name := range s.ManualPages() {
		c = c.Add(s.ManualCount(name))
	}

	for _, cat := range Categories() {
		catalog, _ := CatalogFor(cat)
		c = c.Add(s.CatalogCount(catalog))
	}

	return c
}
