package patients

import (
	"sync"

	"patient-records-service/internal/app/models"
)

// PatientState holds the shared patient list and selection. All mutation
// goes through its named operations.
//
// Every list mutation advances the generation, so a refresh started before
// a create/update/delete cannot overwrite the newer list when it finishes.
type PatientState struct {
	mu         sync.RWMutex
	patients   []models.Patient
	selectedID string
	loaded     bool
	inFlight   int
	lastErr    error
	generation uint64
}

// PatientSnapshot is a copy of the state safe to hand to callers.
type PatientSnapshot struct {
	Patients   []models.Patient
	Selected   *models.Patient
	Loaded     bool
	Loading    bool
	LastError  error
	Generation uint64
}

func NewPatientState() *PatientState {
	return &PatientState{patients: []models.Patient{}}
}

func (s *PatientState) Snapshot() PatientSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := PatientSnapshot{
		Patients:   clonePatients(s.patients),
		Loaded:     s.loaded,
		Loading:    s.inFlight > 0,
		LastError:  s.lastErr,
		Generation: s.generation,
	}
	if index := s.indexOf(s.selectedID); index >= 0 {
		selected := s.patients[index]
		snapshot.Selected = &selected
	}
	return snapshot
}

func (s *PatientState) Find(patientID string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(patientID)
	if index < 0 {
		return models.Patient{}, false
	}
	return s.patients[index], true
}

func (s *PatientState) ReplaceAll(patients []models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loaded = true
	s.setPatients(patients)
}

func (s *PatientState) Add(patient models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.patients = append(s.patients, patient)
}

// Replace swaps the patient with the same id and refreshes the selection if
// it pointed at that patient. It reports whether an entry was replaced.
func (s *PatientState) Replace(patient models.Patient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(patient.ID)
	if index < 0 {
		return false
	}
	s.generation++
	s.patients[index] = patient
	return true
}

// Remove drops the patient and clears the selection if it was selected.
func (s *PatientState) Remove(patientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(patientID)
	if index < 0 {
		return false
	}
	s.generation++
	s.patients = append(s.patients[:index:index], s.patients[index+1:]...)
	if s.selectedID == patientID {
		s.selectedID = ""
	}
	return true
}

func (s *PatientState) Select(patientID string) (models.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(patientID)
	if index < 0 {
		return models.Patient{}, false
	}
	s.selectedID = patientID
	return s.patients[index], true
}

func (s *PatientState) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
}

// Invalidate marks the list stale so the next read reloads it. The current
// list and selection stay visible until that reload lands, and a refresh
// already in flight is superseded.
func (s *PatientState) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loaded = false
}

func (s *PatientState) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.inFlight++
	s.lastErr = nil
	return s.generation
}

// FinishRefresh applies a refresh result unless a newer refresh or mutation
// has happened since BeginRefresh returned generation. A failed refresh
// empties the list and records err.
func (s *PatientState) FinishRefresh(generation uint64, patients []models.Patient, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight > 0 {
		s.inFlight--
	}
	if generation != s.generation {
		return false
	}

	if err != nil {
		s.lastErr = err
		s.loaded = false
		s.setPatients(nil)
		return true
	}

	s.lastErr = nil
	s.loaded = true
	s.setPatients(patients)
	return true
}

func (s *PatientState) setPatients(patients []models.Patient) {
	s.patients = clonePatients(patients)
	if s.selectedID != "" && s.indexOf(s.selectedID) < 0 {
		s.selectedID = ""
	}
}

func (s *PatientState) indexOf(patientID string) int {
	if patientID == "" {
		return -1
	}
	for i := range s.patients {
		if s.patients[i].ID == patientID {
			return i
		}
	}
	return -1
}

func clonePatients(patients []models.Patient) []models.Patient {
	cloned := make([]models.Patient, len(patients))
	copy(cloned, patients)
	return cloned
}
