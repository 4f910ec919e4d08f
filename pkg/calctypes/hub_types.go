package calctypes

import "time"

// HistoryItem records one evaluated calculation.
type HistoryItem struct {
	ID             string    `json:"id"`
	CalculatorID   string    `json:"calculatorId"`
	CalculatorName string    `json:"calculatorName"`
	Inputs         Inputs    `json:"inputs"`
	Headline       string    `json:"headline"`
	Timestamp      time.Time `json:"timestamp"`
}

// Todo is an entry of the dashboard task list.
type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
