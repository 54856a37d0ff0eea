package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/models"
)

func ListDrivers(db *database.DB) ([]models.Driver, error) {
	rows, err := db.Query(`
		SELECT id, name, phone, email, is_active, vehicle_type, license_number, created_at, updated_at
		FROM drivers
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Email, &d.IsActive,
			&d.VehicleType, &d.LicenseNumber, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func GetDriverByID(db *database.DB, id uuid.UUID) (models.Driver, error) {
	var d models.Driver
	err := db.QueryRow(`
		SELECT id, name, phone, email, is_active, vehicle_type, license_number, created_at, updated_at
		FROM drivers
		WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Phone, &d.Email, &d.IsActive,
			&d.VehicleType, &d.LicenseNumber, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func CreateDriver(db *database.DB, d models.Driver) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO drivers (name, phone, email, is_active, vehicle_type, license_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		d.Name, d.Phone, d.Email, d.IsActive, d.VehicleType, d.LicenseNumber).Scan(&id)
	return id, err
}

func UpdateDriver(db *database.DB, d models.Driver) error {
	res, err := db.Exec(`
		UPDATE drivers
		SET name = $2, phone = $3, email = $4, is_active = $5, vehicle_type = $6, license_number = $7, updated_at = now()
		WHERE id = $1`,
		d.ID, d.Name, d.Phone, d.Email, d.IsActive, d.VehicleType, d.LicenseNumber)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func SetDriverActive(db *database.DB, id uuid.UUID, active bool) error {
	res, err := db.Exec(`
		UPDATE drivers
		SET is_active = $2, updated_at = now()
		WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteDriver(db *database.DB, id uuid.UUID) error {
	res, err := db.Exec(`DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func ListDeliveries(db *database.DB, status *models.DeliveryStatus) ([]models.Delivery, error) {
	query := `
		SELECT id, order_id, driver_id, status, address, created_at, updated_at
		FROM deliveries`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []models.Delivery
	for rows.Next() {
		var d models.Delivery
		if err := rows.Scan(&d.ID, &d.OrderID, &d.DriverID, &d.Status,
			&d.Address, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}

func UpdateDeliveryStatus(db *database.DB, id uuid.UUID, status models.DeliveryStatus) error {
	res, err := db.Exec(`
		UPDATE deliveries
		SET status = $2, updated_at = now()
		WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AssignDriver puts a delivery in progress under the given driver.
func AssignDriver(db *database.DB, id, driverID uuid.UUID) error {
	res, err := db.Exec(`
		UPDATE deliveries
		SET driver_id = $2, status = $3, updated_at = now()
		WHERE id = $1`, id, driverID, models.DeliveryInProgress)
	if err != nil {
		return err
	}
	return requireRow(res)
}
