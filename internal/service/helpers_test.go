package service

import (
	"encoding/json"
	"time"

	"conecta-joven/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	newSessionID = uuid.NewString
	timeNow = time.Now
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal

	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	touchLastLogin = store.TouchLastLogin
	listJobs = store.ListJobs
	createJob = store.CreateJob
	deleteJob = store.DeleteJob
	listApplicationHistory = store.ListApplicationHistory
	createAppointment = store.CreateAppointment
	firstAppointmentByDNI = store.FirstAppointmentByDNI
	listAppointments = store.ListAppointments
	createMentorPrereg = store.CreateMentorPrereg
}
