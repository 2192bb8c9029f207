package models

import "time"

// Request types

type VoteRequest struct {
	CandidateID     string `json:"candidateId"`
	LinkedInProfile string `json:"linkedInProfile,omitempty"`
}

type MakeAdminRequest struct {
	UID string `json:"uid"`
}

// Response types

type VoteResponse struct {
	Message string `json:"message"`
}

type MakeAdminResponse struct {
	Message string `json:"message"`
}

// Domain types

type Candidate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Votes int64  `json:"votes"`
}

// Voter is keyed by Subject, the verified identity of the user who cast the
// vote. VotedAt is assigned by the store at commit time and stays null until
// the store has materialized it.
type Voter struct {
	Subject     string     `json:"subjectId"`
	Name        string     `json:"name"`
	CandidateID string     `json:"candidateId"`
	Profile     string     `json:"linkedInProfile,omitempty"`
	VotedAt     *time.Time `json:"votedAt"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
