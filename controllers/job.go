// controllers/job.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mechshop-backend/models"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

type JobController struct {
	store store.Store
	jobs  *services.JobManager
}

func NewJobController(s store.Store, jobs *services.JobManager) *JobController {
	return &JobController{store: s, jobs: jobs}
}

// CreateJob records a completed unit of work. Consumable lines draw down
// inventory before the job is written; a failed draw-down writes nothing.
func (jc *JobController) CreateJob(c *gin.Context) {
	staff, ok := currentUser(c, jc.store)
	if !ok {
		return
	}

	var input services.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := jc.jobs.Create(input, staff)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs lists jobs; ?staffId= and ?date=yyyy-mm-dd narrow the result.
func (jc *JobController) GetJobs(c *gin.Context) {
	var (
		jobs []models.Job
		err  error
	)
	switch {
	case c.Query("staffId") != "":
		jobs, err = jc.jobs.ByStaff(c.Query("staffId"))
	case c.Query("date") != "":
		var date time.Time
		date, err = time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-mm-dd")
			return
		}
		jobs, err = jc.jobs.ByDate(date)
	default:
		jobs, err = jc.jobs.List()
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (jc *JobController) GetJob(c *gin.Context) {
	job, err := jc.jobs.Get(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob replaces the whole record. Editing consumables here does not
// touch inventory levels.
func (jc *JobController) UpdateJob(c *gin.Context) {
	var input services.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := jc.jobs.Update(c.Param("id"), input)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (jc *JobController) DeleteJob(c *gin.Context) {
	if err := jc.jobs.Delete(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
