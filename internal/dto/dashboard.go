package dto

type UserDashboardResponseDTO struct {
	Deposits     []DepositResponseDTO     `json:"deposits"`
	Transactions []TransactionResponseDTO `json:"transactions"`
	Totals       []TotalResponseDTO       `json:"totals"`
}

type AdminDashboardResponseDTO struct {
	Totals []TotalResponseDTO `json:"totals"`
	Plans  []PlanResponseDTO  `json:"plans"`
	Users  []UserResponseDTO  `json:"users"`
}
