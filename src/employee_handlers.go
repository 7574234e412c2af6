package main

import (
	"net/http"
	"strconv"

	"hrms/src/common"
	"hrms/src/types"
	"hrms/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func employeeHandlers(g *gin.RouterGroup, d *gorm.DB) *gin.RouterGroup {
	g.
		GET("/employees", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			employees, err := common.ListEmployees(d, org)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": employees})
		}).
		GET("/employees/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Employee not found"))
				return
			}
			employee, err := common.GetEmployee(d, org, id)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "data": employee})
		}).
		POST("/employees", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			var body types.CreateEmployeeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("First name, last name, and email are required"))
				return
			}
			employee, err := common.CreateEmployee(d, org, userId, &body)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "message": "Employee created successfully", "data": employee})
		}).
		PUT("/employees/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Employee not found"))
				return
			}
			var body types.UpdateEmployeeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("Invalid request body"))
				return
			}
			employee, err := common.UpdateEmployee(d, org, userId, id, &body)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee updated successfully", "data": employee})
		}).
		DELETE("/employees/:id", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Employee not found"))
				return
			}
			if err := common.DeleteEmployee(d, org, userId, id); err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted successfully"})
		}).
		POST("/employees/:id/assign-team", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Employee not found"))
				return
			}
			var body types.AssignTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("Team ID is required"))
				return
			}
			if err := common.AssignTeam(d, org, userId, id, body.TeamID); err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Team assigned successfully"})
		}).
		POST("/employees/:id/unassign-team", func(ctx *gin.Context) {
			org := ctx.GetUint("org")
			userId := ctx.GetUint("id")
			id, err := parseIDParam(ctx)
			if err != nil {
				utils.RespondError(ctx, types.ErrNotFound("Employee not found"))
				return
			}
			var body types.AssignTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.RespondError(ctx, types.ErrValidation("Team ID is required"))
				return
			}
			if err := common.UnassignTeam(d, org, userId, id, body.TeamID); err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Team unassigned successfully"})
		})
	return g
}

func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	// Zero is never a valid id and would be ignored as a gorm struct
	// condition, so treat it as absent.
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
