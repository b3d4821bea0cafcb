package model

import "gorm.io/gorm"

// All lists the bootstrap models in dependency-free order.
func All() []any {
	return []any{
		&Student{},
		&Course{},
		&Attendance{},
		&FeePayment{},
		&Lead{},
		&Test{},
		&Result{},
		&Faculty{},
		&Room{},
		&ClassSchedule{},
	}
}

// AutoMigrate creates missing tables/columns. It never drops anything.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
