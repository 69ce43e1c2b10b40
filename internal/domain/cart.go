package domain

// Cart is an ordered multiset of variant ids, one entry per add action.
type Cart struct {
	Items []VariantID
}

func (c *Cart) Add(id VariantID) {
	c.Items = append(c.Items, id)
}

// Remove drops every occurrence of id and reports how many were removed.
// The scan runs back to front so deleting an entry never skips the next one.
func (c *Cart) Remove(id VariantID) int {
	removed := 0
	for i := len(c.Items) - 1; i >= 0; i-- {
		if c.Items[i] == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			removed++
		}
	}
	return removed
}

func (c Cart) Len() int {
	return len(c.Items)
}
