/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"time"

	"github.com/google/uuid"
	model "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
)

const planMilestoneOffsetDays = 14

// buildIntegrationPlan produces the standard two-phase, 90-day onboarding plan.
// The plan is deliberately template-driven: detected risks inform the humans
// executing it, but do not alter the phase structure or timeline.
func buildIntegrationPlan(assessmentDate int64) model.IntegrationPlan {

	milestoneDate := assessmentDate + int64(planMilestoneOffsetDays*24*time.Hour/time.Second)

	return model.IntegrationPlan{
		PlanId: uuid.New().String(),
		Phases: []model.IntegrationPhase{
			{
				Name:         "Cultural Discovery & Alignment",
				DurationDays: 30,
				Activities: []string{
					"Facilitated culture mapping sessions with both parties",
					"Joint working-norms agreement covering communication and decisions",
					"Leadership introductions and expectation setting",
				},
				SuccessCriteria: []string{
					"Working-norms agreement signed off by both parties",
					"All team members completed company orientation",
				},
				Risks: []string{
					"Surface-level alignment that hides unstated expectations",
				},
			},
			{
				Name:         "Operational Integration",
				DurationDays: 60,
				Activities: []string{
					"Embed team into delivery cadence and tooling",
					"Shadowing rotations with adjacent company teams",
					"First joint delivery milestone with shared ownership",
				},
				SuccessCriteria: []string{
					"Team delivering through standard company processes",
					"First joint milestone delivered on schedule",
				},
				Risks: []string{
					"Process friction slowing the team's established velocity",
				},
			},
		},
		TotalTimelineDays: 90,
		SuccessMetrics: []string{
			"Team retention through the first 90 days",
			"Velocity restored to pre-transition baseline",
			"Cultural fit survey score above 70",
		},
		Milestones: []model.PlanMilestone{
			{
				Name:        "Working norms agreed",
				Description: "Both parties have signed off the joint working-norms agreement.",
				TargetDate:  milestoneDate,
			},
		},
		Resources: []model.ResourceEstimate{
			{Description: "Dedicated integration coach (90 days, part-time)", CostEstimate: 15000},
			{Description: "Culture alignment workshops and facilitation", CostEstimate: 5000},
		},
	}
}
