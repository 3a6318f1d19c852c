package main

import (
	"fmt"
	"log"
	"time"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/config"
	"pawbase-backend/internal/database"
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the development database with a small, deterministic fixture set:
// two organizations with admins, shelters, staff assignments, animals,
// medical records, vaccinations and adoption requests. Re-running is safe;
// existing rows (matched by email or name) are reused.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if err := seed(db, cfg); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding complete")
}

func seed(db *gorm.DB, cfg *config.Config) error {
	hasher := auth.NewHasher(cfg.BcryptCost)

	hash, err := hasher.Hash("password123")
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin1 := seedUser(db, "admin@happypaws.example.com", "Dana Admin", models.RoleOrgAdmin, hash)
	admin2 := seedUser(db, "admin@secondchance.example.com", "Noa Admin", models.RoleOrgAdmin, hash)
	staff1 := seedUser(db, "staff1@happypaws.example.com", "Omer Staff", models.RoleStaff, hash)
	staff2 := seedUser(db, "staff2@happypaws.example.com", "Tal Staff", models.RoleStaff, hash)
	staff3 := seedUser(db, "staff@secondchance.example.com", "Lior Staff", models.RoleStaff, hash)
	adopter := seedUser(db, "adopter@example.com", "Sam Adopter", models.RoleAdopter, hash)

	org1 := seedOrganization(db, "Happy Paws", "contact@happypaws.example.com", admin1.ID)
	org2 := seedOrganization(db, "Second Chance", "contact@secondchance.example.com", admin2.ID)

	central := seedShelter(db, org1.ID, "Central Shelter", "Tel Aviv")
	north := seedShelter(db, org1.ID, "Northern Shelter", "Haifa")
	south := seedShelter(db, org2.ID, "Desert Shelter", "Beer Sheva")

	seedMembership(db, staff1.ID, central.ID)
	seedMembership(db, staff2.ID, north.ID)
	seedMembership(db, staff3.ID, south.ID)

	rex := seedAnimal(db, central.ID, "Rex", "dog", "Labrador Retriever", models.AdoptionStatusAvailable)
	luna := seedAnimal(db, central.ID, "Luna", "cat", "Siamese", models.AdoptionStatusAvailable)
	buddy := seedAnimal(db, north.ID, "Buddy", "dog", "Beagle", models.AdoptionStatusAdopted)
	seedAnimal(db, south.ID, "Mitzi", "cat", "Domestic Shorthair", models.AdoptionStatusQuarantine)

	visit := time.Now().AddDate(0, -1, 0)
	db.Where(models.MedicalRecord{AnimalID: rex.ID, Diagnosis: "Annual checkup"}).
		Attrs(models.MedicalRecord{VisitDate: visit, Treatment: "None required", VetName: "Dr. Levi"}).
		FirstOrCreate(&models.MedicalRecord{})

	nextDue := time.Now().AddDate(1, 0, 0)
	db.Where(models.Vaccination{AnimalID: rex.ID, VaccineName: "Rabies"}).
		Attrs(models.Vaccination{StaffUserID: staff1.ID, DateAdministered: visit, NextDueDate: &nextDue}).
		FirstOrCreate(&models.Vaccination{})

	db.Where(models.AdoptionRequest{AnimalID: luna.ID, AdopterUserID: adopter.ID}).
		Attrs(models.AdoptionRequest{Status: models.RequestStatusSubmitted}).
		FirstOrCreate(&models.AdoptionRequest{})

	db.Where(models.AdoptionRequest{AnimalID: buddy.ID, AdopterUserID: adopter.ID}).
		Attrs(models.AdoptionRequest{Status: models.RequestStatusApproved, StaffNotes: "Home visit passed"}).
		FirstOrCreate(&models.AdoptionRequest{})

	return db.Error
}

func seedUser(db *gorm.DB, email, fullName string, role models.UserRole, hash string) *models.User {
	u := &models.User{}
	db.Where(models.User{Email: email}).
		Attrs(models.User{FullName: fullName, Role: role, PasswordHash: hash}).
		FirstOrCreate(u)
	return u
}

func seedOrganization(db *gorm.DB, name, email string, adminID uuid.UUID) *models.Organization {
	o := &models.Organization{}
	db.Where(models.Organization{Name: name}).
		Attrs(models.Organization{ContactEmail: email, AdminID: adminID}).
		FirstOrCreate(o)
	return o
}

func seedShelter(db *gorm.DB, orgID uuid.UUID, name, city string) *models.Shelter {
	s := &models.Shelter{}
	db.Where(models.Shelter{OrganizationID: orgID, Name: name}).
		Attrs(models.Shelter{City: city}).
		FirstOrCreate(s)
	return s
}

func seedMembership(db *gorm.DB, userID, shelterID uuid.UUID) {
	db.Where(models.StaffMembership{UserID: userID, ShelterID: shelterID}).
		FirstOrCreate(&models.StaffMembership{})
}

func seedAnimal(db *gorm.DB, shelterID uuid.UUID, name, species, breed string, status models.AdoptionStatus) *models.Animal {
	a := &models.Animal{}
	db.Where(models.Animal{ShelterID: shelterID, Name: name}).
		Attrs(models.Animal{Species: species, BreedName: breed, Status: status}).
		FirstOrCreate(a)
	return a
}
