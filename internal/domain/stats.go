package domain

// DashboardStats is derived from an owner's record streams on every request;
// it is never persisted.
type DashboardStats struct {
	TotalReceived  int
	TotalDead      int
	TotalDiscarded int
	TotalProduced  int
	TotalInNursery int
	SurvivalRate   float64
}
