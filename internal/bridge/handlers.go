package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/oguzhan/uniregistry/internal/app/services"
	"github.com/oguzhan/uniregistry/internal/pkg/respond"
)

// updateFrame is the payload shape of "<entity>:update": the key plus the
// full replacement record.
type updateFrame struct {
	ID   int64           `json:"id"`
	Data json.RawMessage `json:"data"`
}

// BuildRegistry wires every service operation to its channel. Entity
// channels are "<entity>:getAll|getById|create|update|delete"; the fifteen
// reports share "query:run" keyed by the payload ("q1".."q15").
func BuildRegistry(svcs *services.Services) *Registry {
	r := NewRegistry()

	registerEntity(r, "department", svcs.Departments, "Departments")
	registerEntity(r, "instructor", svcs.Instructors, "Instructors")
	registerEntity(r, "student", svcs.Students, "Students")
	registerEntity(r, "course", svcs.Courses, "Courses")
	registerEntity(r, "enrollment", svcs.Enrollments, "Enrollments")
	registerEntity(r, "payment", svcs.Payments, "Payments")

	registerReports(r, svcs.Reports)

	return r
}

func registerEntity[T any](r *Registry, name string, svc *services.EntityService[T], plural string) {
	resource := svc.Resource()
	lower := strings.ToLower(resource)

	r.Register(name+":getAll", func(ctx context.Context, _ json.RawMessage) (int, interface{}) {
		records, err := svc.List(ctx)
		if err != nil {
			return http.StatusInternalServerError, respond.ErrorBody(err, "Failed to retrieve "+strings.ToLower(plural))
		}
		return http.StatusOK, respond.SuccessBody(records, plural+" retrieved successfully")
	})

	r.Register(name+":getById", func(ctx context.Context, payload json.RawMessage) (int, interface{}) {
		id, err := parseIDPayload(payload)
		if err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid "+lower+" ID")
		}
		record, err := svc.GetByID(ctx, id)
		if err != nil {
			return respond.FailureBody(err, resource, "Failed to retrieve "+lower)
		}
		return http.StatusOK, respond.SuccessBody(record, resource+" retrieved successfully")
	})

	r.Register(name+":create", func(ctx context.Context, payload json.RawMessage) (int, interface{}) {
		var record T
		if err := json.Unmarshal(payload, &record); err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid "+lower+" data")
		}
		created, err := svc.Create(ctx, &record)
		if err != nil {
			return http.StatusInternalServerError, respond.ErrorBody(err, "Failed to create "+lower)
		}
		return http.StatusCreated, respond.SuccessBody(created, resource+" created successfully")
	})

	r.Register(name+":update", func(ctx context.Context, payload json.RawMessage) (int, interface{}) {
		var frame updateFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid "+lower+" data")
		}
		var record T
		if err := json.Unmarshal(frame.Data, &record); err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid "+lower+" data")
		}
		updated, err := svc.Update(ctx, frame.ID, &record)
		if err != nil {
			return respond.FailureBody(err, resource, "Failed to update "+lower)
		}
		return http.StatusOK, respond.SuccessBody(updated, resource+" updated successfully")
	})

	r.Register(name+":delete", func(ctx context.Context, payload json.RawMessage) (int, interface{}) {
		id, err := parseIDPayload(payload)
		if err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid "+lower+" ID")
		}
		deleted, err := svc.Delete(ctx, id)
		if err != nil {
			return respond.FailureBody(err, resource, "Failed to delete "+lower)
		}
		return http.StatusOK, respond.SuccessBody(deleted, resource+" deleted successfully")
	})
}

func registerReports(r *Registry, svc *services.ReportService) {
	byKey := make(map[string]services.ReportDefinition)
	for _, def := range services.ReportCatalog() {
		byKey[def.Key] = def
	}

	r.Register("query:run", func(ctx context.Context, payload json.RawMessage) (int, interface{}) {
		key, err := parseQueryKey(payload)
		if err != nil {
			return http.StatusBadRequest, respond.ErrorBody(err, "Invalid query type")
		}
		def, ok := byKey[key]
		if !ok {
			return http.StatusBadRequest, respond.ErrorEnvelope{Error: "Invalid query type: " + key}
		}
		data, err := def.Run(ctx, svc)
		if err != nil {
			return respond.FailureBody(err, "Resource", def.FailureMessage)
		}
		return http.StatusOK, respond.SuccessBody(data, def.Message)
	})
}

// parseQueryKey accepts the report key as a bare JSON string or wrapped as
// {"query": "qN"}; the desktop shell has sent both shapes.
func parseQueryKey(payload json.RawMessage) (string, error) {
	var key string
	if err := json.Unmarshal(payload, &key); err == nil {
		return key, nil
	}
	var frame struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		return "", err
	}
	return frame.Query, nil
}

// parseIDPayload accepts the identifier as a bare JSON number or string.
func parseIDPayload(payload json.RawMessage) (int64, error) {
	var id int64
	if err := json.Unmarshal(payload, &id); err == nil {
		return id, nil
	}
	var s string
	if err := json.Unmarshal(payload, &s); err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}
