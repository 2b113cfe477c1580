package reference

// f1Points is the race points table; positions outside 1..10 score zero.
var f1Points = map[int]int{
	1: 25, 2: 18, 3: 15, 4: 12, 5: 10, 6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
}

// sprintPoints is the sprint race points table.
var sprintPoints = map[int]int{
	1: 8, 2: 7, 3: 6, 4: 5, 5: 4, 6: 3, 7: 2, 8: 1,
}

// F1Points returns the race points for a finishing position.
func F1Points(position int) int {
	return f1Points[position]
}

// SprintPoints returns the sprint points for a finishing position.
func SprintPoints(position int) int {
	return sprintPoints[position]
}
