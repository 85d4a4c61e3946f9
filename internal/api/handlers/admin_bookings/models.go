package admin_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос списка бронирований из query параметров
func ToServiceRequest(query url.Values) (*models.AdminBookingsRequest, error) {
	req := &models.AdminBookingsRequest{}

	if v := query.Get("customerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &id
	}

	if v := query.Get("serviceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &id
	}

	if v := query.Get("staffId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &id
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if v := query.Get("includeInactive"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
