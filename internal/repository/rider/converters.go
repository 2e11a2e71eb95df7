package rider

import "fastshift/internal/entities"

func ToDomain(a *ApplicationDB) *entities.RiderApplication {
	if a == nil {
		return nil
	}
	return &entities.RiderApplication{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Age:        a.Age,
		Phone:      a.Phone,
		NationalID: a.NationalID,
		Region:     a.Region,
		District:   a.District,
		Address:    a.Address,
		BikeBrand:  a.BikeBrand,
		BikeNumber: a.BikeNumber,
		Status:     entities.ApplicationStatusType(a.Status),
		CreatedAt:  a.CreatedAt,
	}
}

func FromDomainModify(applicationModify *entities.RiderApplicationModify) *ApplicationModifyDB {
	if applicationModify == nil {
		return nil
	}
	applicationDB := &ApplicationModifyDB{}

	if applicationModify.ID != nil {
		applicationDB.ID = applicationModify.ID
	}
	if applicationModify.Name != nil {
		applicationDB.Name = applicationModify.Name
	}
	if applicationModify.Email != nil {
		applicationDB.Email = applicationModify.Email
	}
	if applicationModify.Age != nil {
		applicationDB.Age = applicationModify.Age
	}
	if applicationModify.Phone != nil {
		applicationDB.Phone = applicationModify.Phone
	}
	if applicationModify.NationalID != nil {
		applicationDB.NationalID = applicationModify.NationalID
	}
	if applicationModify.Region != nil {
		applicationDB.Region = applicationModify.Region
	}
	if applicationModify.District != nil {
		applicationDB.District = applicationModify.District
	}
	if applicationModify.Address != nil {
		applicationDB.Address = applicationModify.Address
	}
	if applicationModify.BikeBrand != nil {
		applicationDB.BikeBrand = applicationModify.BikeBrand
	}
	if applicationModify.BikeNumber != nil {
		applicationDB.BikeNumber = applicationModify.BikeNumber
	}
	if applicationModify.Status != nil {
		status := applicationModify.Status.String()
		applicationDB.Status = &status
	}

	return applicationDB
}

func ToDomainList(applicationsDB []ApplicationDB) []entities.RiderApplication {
	if len(applicationsDB) == 0 {
		return []entities.RiderApplication{}
	}

	result := make([]entities.RiderApplication, len(applicationsDB))
	for i, applicationDB := range applicationsDB {
		result[i] = *ToDomain(&applicationDB)
	}
	return result
}
