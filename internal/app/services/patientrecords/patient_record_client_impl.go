package patientrecords

import (
	"context"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type patientRecordClient struct {
	Client contracts.HTTPClient
	Log    *zap.Logger
}

func NewPatientRecordClient(client contracts.HTTPClient, logger *zap.Logger) contracts.PatientRecordClient {
	return &patientRecordClient{
		Client: client,
		Log:    logger,
	}
}

func (c *patientRecordClient) GetPatients(ctx context.Context) ([]responses.PatientBasic, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.GetPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Get(ctx, constvars.UpstreamPatientListPath)
	if err != nil {
		return nil, err
	}

	var listing responses.PatientListing
	if err := json.Unmarshal(body, &listing); err != nil {
		c.Log.Error("patientRecordClient.GetPatients error decoding listing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamDecodeResponse(err, constvars.UpstreamPatientListPath)
	}

	patients := listing.Records()
	c.Log.Info("patientRecordClient.GetPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

// GetPatientRecord returns the detail payload as decoded JSON without
// assuming its shape. Shaping happens in normalization.
func (c *patientRecordClient) GetPatientRecord(ctx context.Context, patientID string) (interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.GetPatientRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := constvars.UpstreamPatientRecordPath(patientID)
	body, err := c.Client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var detail interface{}
	if err := json.Unmarshal(body, &detail); err != nil {
		c.Log.Warn("patientRecordClient.GetPatientRecord detail is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamDecodeResponse(err, path)
	}
	return detail, nil
}

func (c *patientRecordClient) GetPatient(ctx context.Context, patientID string) (interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := constvars.UpstreamPatientItemPath(patientID)
	body, err := c.Client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return c.decodeEnvelope(requestID, path, body)
}

func (c *patientRecordClient) CreatePatient(ctx context.Context, payload *requests.UpstreamPatientPayload) (interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Post(ctx, constvars.UpstreamPatientPath, payload)
	if err != nil {
		return nil, err
	}

	data, err := c.decodeEnvelope(requestID, constvars.UpstreamPatientPath, body)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, requestID, createdID(body))
	c.Log.Info("patientRecordClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return data, nil
}

func (c *patientRecordClient) UpdatePatient(ctx context.Context, patientID string, payload *requests.UpstreamPatientPayload) (interface{}, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path := constvars.UpstreamPatientItemPath(patientID)
	body, err := c.Client.Put(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	data, err := c.decodeEnvelope(requestID, path, body)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, requestID, patientID)
	c.Log.Info("patientRecordClient.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return data, nil
}

func (c *patientRecordClient) DeletePatient(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("patientRecordClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := c.Client.Delete(ctx, constvars.UpstreamPatientItemPath(patientID)); err != nil {
		return err
	}

	c.invalidate(ctx, requestID, patientID)
	c.Log.Info("patientRecordClient.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// InvalidatePatient drops the cached listing and every cached view of one
// patient. An empty id drops only the listing.
func (c *patientRecordClient) InvalidatePatient(ctx context.Context, patientID string) error {
	return c.Client.Invalidate(ctx, patientCachePaths(patientID)...)
}

func (c *patientRecordClient) ClearCache(ctx context.Context) error {
	c.Log.Info("patientRecordClient.ClearCache called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return c.Client.InvalidateAll(ctx)
}

// invalidate runs after a mutation already succeeded upstream, so a cache
// failure is logged and not returned.
func (c *patientRecordClient) invalidate(ctx context.Context, requestID, patientID string) {
	if err := c.InvalidatePatient(ctx, patientID); err != nil {
		c.Log.Warn("patientRecordClient cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}

// decodeEnvelope returns the "data" member of a {data: ...} envelope. Bodies
// without an envelope are returned whole, empty bodies as nil.
func (c *patientRecordClient) decodeEnvelope(requestID, path string, body []byte) (interface{}, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.Log.Error("patientRecordClient error decoding envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamDecodeResponse(err, path)
	}

	if object, ok := decoded.(map[string]interface{}); ok {
		if data, found := object["data"]; found {
			return data, nil
		}
	}
	return decoded, nil
}

func patientCachePaths(patientID string) []string {
	if patientID == "" {
		return []string{constvars.UpstreamPatientListPath}
	}
	return []string{
		constvars.UpstreamPatientListPath,
		constvars.UpstreamPatientItemPath(patientID),
		constvars.UpstreamPatientRecordPath(patientID),
	}
}

// createdID reads the new patient's id from the create response, looking
// inside the data envelope when there is one.
func createdID(body []byte) string {
	root := gjson.ParseBytes(body)
	if data := root.Get("data"); data.Exists() {
		root = data
	}
	for _, key := range []string{"id", "patient_id", "_id"} {
		value := root.Get(key)
		if value.Type == gjson.String || value.Type == gjson.Number {
			return value.String()
		}
	}
	return ""
}
