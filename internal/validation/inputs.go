package validation

import "gorm.io/datatypes"

// Client-settable payloads for each entity. Server-assigned fields (id,
// timestamps, lead/viewing status on create) have no slot here, so they can
// never arrive from a request body.

// PropertyInput is the create payload for a listing. Numeric fields are
// pointers so that a legitimate zero (a studio has zero bedrooms) still
// passes the required check.
type PropertyInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       string   `json:"price" validate:"required,price"`
	Address     string   `json:"address" validate:"required"`
	City        string   `json:"city"`
	Province    string   `json:"province"`
	Bedrooms    *int     `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"required,gte=0"`
	SquareFeet  *int     `json:"squareFeet" validate:"required,gte=1"`
	LotSize     *int     `json:"lotSize" validate:"omitempty,gte=0"`
	YearBuilt   *int     `json:"yearBuilt" validate:"omitempty,year_built"`
	Status      string   `json:"status" validate:"omitempty,oneof=active pending sold"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

// PropertyPatchInput is the partial update payload. Every field is optional;
// an empty body is a legal no-op. Fields that are present must satisfy the
// same rules as on create.
type PropertyPatchInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *string  `json:"price" validate:"omitempty,price"`
	Address     *string  `json:"address" validate:"omitempty,min=1"`
	City        *string  `json:"city" validate:"omitempty,min=1"`
	Province    *string  `json:"province" validate:"omitempty,min=1"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	SquareFeet  *int     `json:"squareFeet" validate:"omitempty,gte=1"`
	LotSize     *int     `json:"lotSize" validate:"omitempty,gte=0"`
	YearBuilt   *int     `json:"yearBuilt" validate:"omitempty,year_built"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active pending sold"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}

// Updates flattens the patch into column/value pairs for the persistence
// layer. A nil slice means the field was absent from the payload.
func (in *PropertyPatchInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Province != nil {
		updates["province"] = *in.Province
	}
	if in.Bedrooms != nil {
		updates["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		updates["bathrooms"] = *in.Bathrooms
	}
	if in.SquareFeet != nil {
		updates["square_feet"] = *in.SquareFeet
	}
	if in.LotSize != nil {
		updates["lot_size"] = *in.LotSize
	}
	if in.YearBuilt != nil {
		updates["year_built"] = *in.YearBuilt
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Features != nil {
		updates["features"] = datatypes.JSONSlice[string](in.Features)
	}
	if in.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](in.Images)
	}
	return updates
}

// LeadInput is the public contact form payload. propertyId is optional; a
// general inquiry has none.
type LeadInput struct {
	Name             string  `json:"name" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required,min=10"`
	Message          string  `json:"message" validate:"required,min=10"`
	PropertyID       *string `json:"propertyId"`
	PropertyInterest string  `json:"propertyInterest"`
}

// ViewingInput is the public showing request payload. propertyId is
// mandatory here.
type ViewingInput struct {
	PropertyID    string `json:"propertyId" validate:"required"`
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// StatusInput is the admin status change payload for leads and viewings.
// Enum membership is checked against the entity's status set by the handler.
type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

// LoginInput is the admin login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
