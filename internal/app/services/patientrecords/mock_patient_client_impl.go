package patientrecords

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type mockPatient struct {
	basic  responses.PatientBasic
	record map[string]interface{}
}

// mockPatientClient serves an in-memory data set when
// UPSTREAM_USE_MOCK_DATA is enabled.
type mockPatientClient struct {
	mu       sync.RWMutex
	patients map[string]*mockPatient
	nextID   int
	Log      *zap.Logger
}

func NewMockPatientClient(logger *zap.Logger) contracts.PatientRecordClient {
	client := &mockPatientClient{
		patients: make(map[string]*mockPatient),
		nextID:   1,
		Log:      logger,
	}
	client.seed()
	return client
}

func (c *mockPatientClient) seed() {
	c.put("1", responses.PatientBasic{
		ID:        "1",
		Name:      "John Doe",
		Age:       45,
		MobNumber: "555-123-4567",
		Gender:    constvars.GenderMale,
		Doctor:    "Dr. Sarah Johnson",
	}, map[string]interface{}{
		"record_id":   "r1",
		"id":          "1",
		"symptoms":    []interface{}{"Headache", "Dizziness", "Shortness of breath"},
		"disease":     "Hypertension",
		"treatment":   "Diet modification, regular exercise, and medication",
		"medications": []interface{}{"Lisinopril", "Amlodipine"},
	})
	c.put("2", responses.PatientBasic{
		ID:        "2",
		Name:      "Emily Smith",
		Age:       32,
		MobNumber: "555-987-6543",
		Gender:    constvars.GenderFemale,
		Doctor:    "Dr. Michael Chen",
	}, map[string]interface{}{
		"record_id":   "r2",
		"id":          "2",
		"symptoms":    []interface{}{"Increased thirst", "Frequent urination", "Fatigue"},
		"disease":     "Type 2 Diabetes",
		"treatment":   "Carbohydrate monitoring, regular blood glucose testing",
		"medications": []interface{}{"Metformin", "Insulin"},
	})
}

func (c *mockPatientClient) put(id string, basic responses.PatientBasic, record map[string]interface{}) {
	c.patients[id] = &mockPatient{basic: basic, record: record}
	if numeric, err := strconv.Atoi(id); err == nil && numeric >= c.nextID {
		c.nextID = numeric + 1
	}
}

func (c *mockPatientClient) GetPatients(ctx context.Context) ([]responses.PatientBasic, error) {
	c.Log.Info("mockPatientClient.GetPatients called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.patients))
	for id := range c.patients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		left, errLeft := strconv.Atoi(ids[i])
		right, errRight := strconv.Atoi(ids[j])
		if errLeft == nil && errRight == nil {
			return left < right
		}
		return ids[i] < ids[j]
	})

	patients := make([]responses.PatientBasic, 0, len(ids))
	for _, id := range ids {
		patients = append(patients, c.patients[id].basic)
	}
	return patients, nil
}

// GetPatientRecord answers unknown ids with a generated record, as the UI
// expects every listed patient to have one.
func (c *mockPatientClient) GetPatientRecord(ctx context.Context, patientID string) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if patient, ok := c.patients[patientID]; ok {
		return copyRecord(patient.record), nil
	}
	return map[string]interface{}{
		"record_id": "r" + patientID,
		"id":        patientID,
		"disease":   fmt.Sprintf("Mock Disease for %s", patientID),
		"symptoms":  []interface{}{"Symptom 1", "Symptom 2"},
		"treatment": "Mock treatment plan",
	}, nil
}

func (c *mockPatientClient) GetPatient(ctx context.Context, patientID string) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	patient, ok := c.patients[patientID]
	if !ok {
		return nil, exceptions.ErrUpstreamStatus(nil, constvars.MethodGet, constvars.UpstreamPatientItemPath(patientID), constvars.StatusNotFound)
	}
	return patient.data(), nil
}

func (c *mockPatientClient) CreatePatient(ctx context.Context, payload *requests.UpstreamPatientPayload) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := strconv.Itoa(c.nextID)
	c.put(id, basicFromPayload(id, payload), recordFromPayload(id, payload))

	c.Log.Info("mockPatientClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPatientIDKey, id),
	)
	return c.patients[id].data(), nil
}

func (c *mockPatientClient) UpdatePatient(ctx context.Context, patientID string, payload *requests.UpstreamPatientPayload) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[patientID]; !ok {
		return nil, exceptions.ErrUpstreamStatus(nil, constvars.MethodPut, constvars.UpstreamPatientItemPath(patientID), constvars.StatusNotFound)
	}
	c.put(patientID, basicFromPayload(patientID, payload), recordFromPayload(patientID, payload))
	return c.patients[patientID].data(), nil
}

func (c *mockPatientClient) DeletePatient(ctx context.Context, patientID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.patients[patientID]; !ok {
		return exceptions.ErrUpstreamStatus(nil, constvars.MethodDelete, constvars.UpstreamPatientItemPath(patientID), constvars.StatusNotFound)
	}
	delete(c.patients, patientID)
	return nil
}

func (c *mockPatientClient) InvalidatePatient(ctx context.Context, patientID string) error {
	return nil
}

func (c *mockPatientClient) ClearCache(ctx context.Context) error {
	return nil
}

// data renders the patient the way the backend returns it from /patient/{id}.
func (p *mockPatient) data() map[string]interface{} {
	data := map[string]interface{}{
		"id":        p.basic.ID.String(),
		"name":      p.basic.Name,
		"age":       p.basic.Age.Int(),
		"mobnumber": p.basic.MobNumber,
		"gender":    p.basic.Gender,
		"doctor":    p.basic.Doctor,
		"record":    copyRecord(p.record),
	}
	if p.basic.LastVisit != nil {
		data["last_visit"] = *p.basic.LastVisit
	}
	if p.basic.NextVisit != nil {
		data["next_visit"] = *p.basic.NextVisit
	}
	return data
}

func basicFromPayload(id string, payload *requests.UpstreamPatientPayload) responses.PatientBasic {
	return responses.PatientBasic{
		ID:        responses.FlexibleString(id),
		Name:      payload.Name,
		Age:       responses.FlexibleInt(payload.Age),
		MobNumber: payload.MobNumber,
		Gender:    payload.Gender,
		Doctor:    payload.Doctor,
		LastVisit: payload.LastVisit,
		NextVisit: payload.NextVisit,
	}
}

func recordFromPayload(id string, payload *requests.UpstreamPatientPayload) map[string]interface{} {
	return map[string]interface{}{
		"record_id":   "r" + id,
		"id":          id,
		"disease":     payload.Disease,
		"symptoms":    toInterfaces(payload.Symptoms),
		"treatment":   payload.Treatment,
		"medications": toInterfaces(payload.Medications),
	}
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, 0, len(values))
	for _, value := range values {
		result = append(result, value)
	}
	return result
}

func copyRecord(record map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(record))
	for key, value := range record {
		copied[key] = value
	}
	return copied
}
