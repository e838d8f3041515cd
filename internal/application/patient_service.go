package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
)

// ErrDentistNotFound is returned when a patient write names a dentist that
// does not exist; callers reject the request instead of writing a dangling
// reference.
var ErrDentistNotFound = errors.New("a valid dentist name must be provided")

// PatientService coordinates patient writes with dentist resolution.
// The lookup and the write are two independent store operations with no
// atomicity guarantee between them.
type PatientService struct {
	Patients        repo.PatientRepository
	Dentists        repo.DentistFinder
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESPatientsIndex string
}

func NewPatientService(patients repo.PatientRepository, dentists repo.DentistFinder, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PatientService {
	return &PatientService{
		Patients:        patients,
		Dentists:        dentists,
		Logger:          logger,
		ES:              es,
		ESPatientsIndex: esIndex,
	}
}

// PatientInput carries the request fields for create and update. Missing
// fields pass through as zero values; only the dentist name is checked.
type PatientInput struct {
	Name                string
	DOB                 string
	Gender              string
	Address             entity.Address
	AppointmentDateTime string
	DentistName         string
}

func (s *PatientService) List(ctx context.Context) ([]entity.Patient, error) {
	return s.Patients.ListAll(ctx)
}

func (s *PatientService) resolve(ctx context.Context, in PatientInput) (*entity.Patient, error) {
	dentist, err := s.Dentists.FindByName(ctx, in.DentistName)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrDentistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity.Patient{
		Name:                in.Name,
		DOB:                 in.DOB,
		Gender:              in.Gender,
		Address:             in.Address,
		AppointmentDateTime: in.AppointmentDateTime,
		DentistID:           dentist.ID,
	}, nil
}

func (s *PatientService) Create(ctx context.Context, in PatientInput) (*repo.InsertResult, error) {
	p, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	res, err := s.Patients.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID
	s.indexPatient(ctx, p)
	return res, nil
}

// Update replaces all patient fields. A non-existent id succeeds with a
// zero-effect result; callers can inspect the matched count.
func (s *PatientService) Update(ctx context.Context, id primitive.ObjectID, in PatientInput) (*repo.UpdateResult, error) {
	p, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	res, err := s.Patients.Replace(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount > 0 {
		p.ID = id
		s.indexPatient(ctx, p)
	}
	return res, nil
}

func (s *PatientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.Patients.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

// indexPatient mirrors the document into Elasticsearch for /patients/search.
// Best-effort: failures are logged and never fail the request.
func (s *PatientService) indexPatient(ctx context.Context, p *entity.Patient) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":                    p.ID.Hex(),
		"name":                  p.Name,
		"dob":                   p.DOB,
		"gender":                p.Gender,
		"address":               p.Address,
		"appointment_date_time": p.AppointmentDateTime,
		"dentist_id":            p.DentistID.Hex(),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPatientsIndex, DocumentID: p.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", p.ID.Hex()).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("patient_id", p.ID.Hex()).Warn("es index response error")
	}
}

func (s *PatientService) removeFromIndex(ctx context.Context, id primitive.ObjectID) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPatientsIndex, DocumentID: id.Hex()}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", id.Hex()).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query on patient name and dentist id.
func (s *PatientService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "gender", "address.postal_code"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPatientsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
