package dto

import "zooarcadia/internal/stats"

type DashboardStats struct {
	AnimalsStats       []stats.AnimalStat `json:"animals_stats"`
	TotalConsultations int64              `json:"total_consultations"`
	MostPopular        string             `json:"most_popular"`
	StatsCount         int                `json:"stats_count"`
}
