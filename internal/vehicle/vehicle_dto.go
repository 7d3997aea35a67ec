package vehicle

type CreateVehicleRequest struct {
	BranchID      int64  `json:"branchId" binding:"required,gt=0"`
	VehicleTypeID int64  `json:"vehicleTypeId" binding:"required,gt=0"`
	PlateNumber   string `json:"plateNumber" binding:"required,max=15"`
	IsActive      *bool  `json:"isActive"`
}

type UpdateVehicleRequest struct {
	BranchID      *int64  `json:"branchId" binding:"omitempty,gt=0"`
	VehicleTypeID *int64  `json:"vehicleTypeId" binding:"omitempty,gt=0"`
	PlateNumber   *string `json:"plateNumber" binding:"omitempty,min=1,max=15"`
	IsActive      *bool   `json:"isActive"`
}
