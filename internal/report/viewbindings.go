package report

// viewBindings converts a View into the map form Liquid templates consume.
// Numbers stay numeric so templates can choose their own formatting filter.
func viewBindings(v View) map[string]any {
	rows := make([]map[string]any, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, map[string]any{
			"event": row.Event,
			"a":     row.A,
			"b":     row.B,
			"total": row.Total,
		})
	}
	return map[string]any{
		"title":    v.Title,
		"unit":     v.Unit,
		"metric_a": v.MetricA,
		"metric_b": v.MetricB,
		"rows":     rows,
	}
}
