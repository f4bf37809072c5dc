package api

import (
	"github.com/ScottySprrw/Fit-tracker/internal/analytics"
	"github.com/ScottySprrw/Fit-tracker/internal/storage"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires both API surfaces onto the engine: the flat /api
// group kept compatible with the original JSON-file backend, and the
// richer /api/v1 group for multi-client mode.
func SetupRoutes(
	router *gin.Engine,
	st *store.Store,
	analyzer *analytics.Analyzer,
	exportStorage storage.ExportStorage,
) {
	clientHandler := NewClientHandler(st, analyzer)
	workoutHandler := NewWorkoutHandler(st)
	kpiHandler := NewKPIHandler(st)
	exerciseHandler := NewExerciseHandler(st)
	profileHandler := NewProfileHandler(st)
	progressHandler := NewProgressHandler(st)
	dataHandler := NewDataHandler(st, analyzer, exportStorage)

	router.Use(RequestIDMiddleware(), RequestLogger())

	// Compatibility surface: single profile, flat workout list, progress
	// ledger keyed by exercise slug.
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", dataHandler.Health)

		apiGroup.GET("/profile", profileHandler.GetProfile)
		apiGroup.POST("/profile", profileHandler.SaveProfile)

		apiGroup.GET("/workouts", workoutHandler.ListWorkouts)
		apiGroup.POST("/workouts", workoutHandler.CreateWorkout)
		apiGroup.GET("/workouts/:id", workoutHandler.GetWorkout)
		apiGroup.PUT("/workouts/:id", workoutHandler.UpdateWorkout)
		// POST also updates here; some clients send partial updates as POST.
		apiGroup.POST("/workouts/:id", workoutHandler.UpdateWorkout)

		apiGroup.GET("/progress", progressHandler.ListProgress)
		apiGroup.POST("/progress", progressHandler.AddEntry)
		apiGroup.GET("/progress/:exercise", progressHandler.GetExerciseProgress)
	}

	apiV1 := router.Group("/api/v1")
	{
		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)
			clientGroup.GET("/:id/stats", clientHandler.GetClientStats)
			clientGroup.GET("/:id/history", clientHandler.GetExerciseHistory)
			clientGroup.GET("/:id/kpis", clientHandler.ListClientKPIs)
			clientGroup.GET("/:id/workouts", clientHandler.ListClientWorkouts)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)

			workoutGroup.POST("/:id/exercises", workoutHandler.AddExercise)
			workoutGroup.PUT("/:id/exercises/:exerciseId", workoutHandler.UpdateExercise)
			workoutGroup.DELETE("/:id/exercises/:exerciseId", workoutHandler.RemoveExercise)

			workoutGroup.POST("/:id/exercises/:exerciseId/sets", workoutHandler.AddSet)
			workoutGroup.PUT("/:id/exercises/:exerciseId/sets/:setId", workoutHandler.UpdateSet)
			workoutGroup.DELETE("/:id/exercises/:exerciseId/sets/:setId", workoutHandler.RemoveSet)
		}

		kpiGroup := apiV1.Group("/kpis")
		{
			kpiGroup.POST("", kpiHandler.CreateMeasurement)
			kpiGroup.PUT("/:id", kpiHandler.UpdateMeasurement)
			kpiGroup.DELETE("/:id", kpiHandler.DeleteMeasurement)
		}

		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		apiV1.PUT("/tags", clientHandler.SetTagFilter)

		dataGroup := apiV1.Group("/data")
		{
			dataGroup.GET("/export", dataHandler.ExportData)
			dataGroup.POST("/import", dataHandler.ImportData)
			dataGroup.POST("/clear", dataHandler.ClearData)
			dataGroup.GET("/top-performers", dataHandler.TopPerformers)
			dataGroup.GET("/trend", dataHandler.Trend)
		}
	}
}
