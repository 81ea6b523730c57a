package catalog

// exercises is the strength and conditioning table. Order matters: queries
// preserve it and core finishers are taken from the top.
var exercises = []ExerciseSpec{
	// Chest
	{Name: "Barbell Bench Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps", "Shoulders"}, NeuralCost: 8, Flags: []string{"shoulder", "wrist"}, Substitutes: []string{"DB Bench", "Machine Press"}},
	{Name: "Incline Barbell Bench Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Shoulders", "Triceps"}, NeuralCost: 8, Flags: []string{"shoulder"}, Substitutes: []string{"Incline DB Press"}},
	{Name: "Decline Bench Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Decline DB Press"}},
	{Name: "Dumbbell Bench Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps", "Shoulders"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Barbell Bench"}},
	{Name: "Incline Dumbbell Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Shoulders"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Incline Barbell"}},
	{Name: "Decline Dumbbell Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Decline Barbell"}},
	{Name: "Chest Dips", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Machine Chest Press"}},
	{Name: "Cable Flyes", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 4, Flags: []string{"shoulder"}, Substitutes: []string{"DB Flyes"}},
	{Name: "Dumbbell Flyes", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 4, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Flyes"}},
	{Name: "Incline Cable Flyes", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 4, Flags: []string{"shoulder"}, Substitutes: []string{"Incline DB Flyes"}},
	{Name: "Incline Dumbbell Flyes", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 4, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Flyes"}},
	{Name: "Pec Deck Machine", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Flyes"}},
	{Name: "Machine Chest Press", Type: Compound, Muscle: "Chest", Secondary: []string{"Triceps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"DB Bench"}},
	{Name: "Pushups", Type: Bodyweight, Muscle: "Chest", Secondary: []string{"Core"}, NeuralCost: 4, Flags: []string{"wrist"}, Substitutes: []string{"Knee Pushups"}},
	{Name: "Weighted Pushups", Type: Bodyweight, Muscle: "Chest", Secondary: []string{"Core"}, NeuralCost: 6, Flags: []string{"wrist"}, Substitutes: []string{"Regular Pushups"}},
	{Name: "Diamond Pushups", Type: Bodyweight, Muscle: "Triceps", Secondary: []string{"Chest"}, NeuralCost: 5, Flags: []string{"wrist", "elbow"}, Substitutes: []string{"Regular Pushups"}},
	{Name: "Svend Press", Type: Isolation, Muscle: "Chest", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Flyes"}},

	// Back
	{Name: "Deadlift", Type: Compound, Muscle: "Posterior Chain", Secondary: []string{"Back", "Grip"}, NeuralCost: 10, Flags: []string{"lower_back", "hip"}, Substitutes: []string{"Romanian Deadlift", "Trap Bar DL"}},
	{Name: "Sumo Deadlift", Type: Compound, Muscle: "Posterior Chain", Secondary: []string{"Quads"}, NeuralCost: 9, Flags: []string{"lower_back", "hip"}, Substitutes: []string{"Conventional Deadlift"}},
	{Name: "Trap Bar Deadlift", Type: Compound, Muscle: "Posterior Chain", Secondary: []string{"Quads"}, NeuralCost: 8, Flags: []string{"lower_back"}, Substitutes: []string{"Deadlift"}},
	{Name: "Barbell Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 7, Flags: []string{"lower_back"}, Substitutes: []string{"Chest Supported Row"}},
	{Name: "Pendlay Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 8, Flags: []string{"lower_back"}, Substitutes: []string{"Barbell Row"}},
	{Name: "Dumbbell Row", Type: Unilateral, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 6, Flags: nil, Substitutes: []string{"Cable Row"}},
	{Name: "T-Bar Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 7, Flags: []string{"lower_back"}, Substitutes: []string{"DB Row"}},
	{Name: "Meadows Row", Type: Unilateral, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 6, Flags: nil, Substitutes: []string{"DB Row"}},
	{Name: "Seal Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 6, Flags: nil, Substitutes: []string{"Chest Supported Row"}},
	{Name: "Pullups", Type: Bodyweight, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 7, Flags: []string{"shoulder", "elbow"}, Substitutes: []string{"Lat Pulldown"}},
	{Name: "Chinups", Type: Bodyweight, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 7, Flags: []string{"shoulder", "elbow"}, Substitutes: []string{"Underhand Lat Pulldown"}},
	{Name: "Weighted Pullups", Type: Compound, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 8, Flags: []string{"shoulder"}, Substitutes: []string{"Pullups"}},
	{Name: "Weighted Chinups", Type: Compound, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 8, Flags: []string{"shoulder"}, Substitutes: []string{"Chinups"}},
	{Name: "Lat Pulldown", Type: Compound, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"Band Pulldown"}},
	{Name: "Wide Grip Lat Pulldown", Type: Compound, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"Lat Pulldown"}},
	{Name: "Close Grip Lat Pulldown", Type: Compound, Muscle: "Lats", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"Lat Pulldown"}},
	{Name: "Cable Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"DB Row"}},
	{Name: "Seated Cable Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"Cable Row"}},
	{Name: "Single Arm Cable Row", Type: Unilateral, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"DB Row"}},
	{Name: "Face Pulls", Type: Isolation, Muscle: "Rear Delts", Secondary: []string{"Upper Back"}, NeuralCost: 3, Flags: nil, Substitutes: []string{"Band Pull Apart"}},
	{Name: "Chest Supported Row", Type: Compound, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 6, Flags: nil, Substitutes: []string{"DB Row"}},
	{Name: "Inverted Row", Type: Bodyweight, Muscle: "Back", Secondary: []string{"Biceps"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"Cable Row"}},
	{Name: "Rack Pulls", Type: Compound, Muscle: "Back", Secondary: []string{"Traps"}, NeuralCost: 8, Flags: []string{"lower_back"}, Substitutes: []string{"Deadlift"}},
	{Name: "Shrugs", Type: Isolation, Muscle: "Traps", Secondary: nil, NeuralCost: 4, Flags: nil, Substitutes: []string{"Dumbbell Shrugs"}},
	{Name: "Dumbbell Shrugs", Type: Isolation, Muscle: "Traps", Secondary: nil, NeuralCost: 4, Flags: nil, Substitutes: []string{"Barbell Shrugs"}},

	// Shoulder
	{Name: "Overhead Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps", "Core"}, NeuralCost: 8, Flags: []string{"shoulder", "lower_back"}, Substitutes: []string{"DB Seated Press"}},
	{Name: "Push Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps", "Legs"}, NeuralCost: 8, Flags: []string{"shoulder", "lower_back"}, Substitutes: []string{"Overhead Press"}},
	{Name: "Seated Dumbbell Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Machine Shoulder Press"}},
	{Name: "Standing Dumbbell Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps", "Core"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Seated DB Press"}},
	{Name: "Arnold Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps"}, NeuralCost: 6, Flags: []string{"shoulder"}, Substitutes: []string{"DB Press"}},
	{Name: "Machine Shoulder Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"DB Press"}},
	{Name: "Lateral Raises", Type: Isolation, Muscle: "Shoulders", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Lateral Raise"}},
	{Name: "Cable Lateral Raises", Type: Isolation, Muscle: "Shoulders", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"DB Lateral Raise"}},
	{Name: "Leaning Lateral Raises", Type: Isolation, Muscle: "Shoulders", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Lateral Raises"}},
	{Name: "Front Raises", Type: Isolation, Muscle: "Shoulders", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Plate Raise"}},
	{Name: "Plate Front Raises", Type: Isolation, Muscle: "Shoulders", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"DB Front Raise"}},
	{Name: "Rear Delt Flyes", Type: Isolation, Muscle: "Rear Delts", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Face Pulls"}},
	{Name: "Reverse Pec Deck", Type: Isolation, Muscle: "Rear Delts", Secondary: nil, NeuralCost: 3, Flags: []string{"shoulder"}, Substitutes: []string{"Rear Delt Flyes"}},
	{Name: "Upright Row", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Traps"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"Cable Upright Row"}},
	{Name: "Landmine Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Core"}, NeuralCost: 6, Flags: nil, Substitutes: []string{"DB Press"}},
	{Name: "Viking Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"Landmine Press"}},
	{Name: "Bradford Press", Type: Compound, Muscle: "Shoulders", Secondary: []string{"Triceps"}, NeuralCost: 6, Flags: []string{"shoulder"}, Substitutes: []string{"Overhead Press"}},

	// Arm
	{Name: "Barbell Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "EZ Bar Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Barbell Curl"}},
	{Name: "Dumbbell Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Cable Curl"}},
	{Name: "Alternating Dumbbell Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "Hammer Curl", Type: Isolation, Muscle: "Biceps", Secondary: []string{"Forearms"}, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "Cross Body Hammer Curl", Type: Isolation, Muscle: "Biceps", Secondary: []string{"Forearms"}, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Hammer Curl"}},
	{Name: "Preacher Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Cable Curl"}},
	{Name: "Cable Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "Concentration Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "Incline Dumbbell Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"DB Curl"}},
	{Name: "Spider Curl", Type: Isolation, Muscle: "Biceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Preacher Curl"}},
	{Name: "Close Grip Bench Press", Type: Compound, Muscle: "Triceps", Secondary: []string{"Chest"}, NeuralCost: 7, Flags: []string{"shoulder", "elbow"}, Substitutes: []string{"Dips"}},
	{Name: "Tricep Dips", Type: Compound, Muscle: "Triceps", Secondary: []string{"Chest"}, NeuralCost: 7, Flags: []string{"shoulder", "elbow"}, Substitutes: []string{"Tricep Pushdown"}},
	{Name: "Weighted Tricep Dips", Type: Compound, Muscle: "Triceps", Secondary: []string{"Chest"}, NeuralCost: 8, Flags: []string{"shoulder", "elbow"}, Substitutes: []string{"Tricep Dips"}},
	{Name: "Tricep Pushdown", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"Overhead Extension"}},
	{Name: "Rope Tricep Pushdown", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"Tricep Pushdown"}},
	{Name: "Overhead Tricep Extension", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow", "shoulder"}, Substitutes: []string{"Tricep Pushdown"}},
	{Name: "Skull Crushers", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 5, Flags: []string{"elbow"}, Substitutes: []string{"Tricep Pushdown"}},
	{Name: "Dumbbell Tricep Extension", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 4, Flags: []string{"elbow"}, Substitutes: []string{"Overhead Extension"}},
	{Name: "Cable Overhead Extension", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"Overhead Extension"}},
	{Name: "Tricep Kickback", Type: Isolation, Muscle: "Triceps", Secondary: nil, NeuralCost: 3, Flags: []string{"elbow"}, Substitutes: []string{"Tricep Pushdown"}},

	// Leg
	{Name: "Back Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes", "Core"}, NeuralCost: 9, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Goblet Squat", "Leg Press"}},
	{Name: "Front Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Core"}, NeuralCost: 9, Flags: []string{"knee", "wrist"}, Substitutes: []string{"Goblet Squat"}},
	{Name: "High Bar Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 9, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Back Squat"}},
	{Name: "Low Bar Squat", Type: Compound, Muscle: "Posterior Chain", Secondary: []string{"Quads"}, NeuralCost: 9, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Back Squat"}},
	{Name: "Pause Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 9, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Back Squat"}},
	{Name: "Box Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 8, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Back Squat"}},
	{Name: "Goblet Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Bodyweight Squat"}},
	{Name: "Zercher Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Core"}, NeuralCost: 8, Flags: []string{"knee", "lower_back"}, Substitutes: []string{"Front Squat"}},
	{Name: "Bulgarian Split Squat", Type: Unilateral, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 7, Flags: []string{"knee", "ankle"}, Substitutes: []string{"Lunges"}},
	{Name: "Walking Lunges", Type: Unilateral, Muscle: "Glutes", Secondary: []string{"Quads"}, NeuralCost: 6, Flags: []string{"knee", "ankle"}, Substitutes: []string{"Step Ups"}},
	{Name: "Reverse Lunges", Type: Unilateral, Muscle: "Glutes", Secondary: []string{"Quads"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Step Ups"}},
	{Name: "Forward Lunges", Type: Unilateral, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Reverse Lunges"}},
	{Name: "Dumbbell Lunges", Type: Unilateral, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Bodyweight Lunges"}},
	{Name: "Leg Press", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Goblet Squat"}},
	{Name: "Hack Squat", Type: Compound, Muscle: "Quads", Secondary: nil, NeuralCost: 7, Flags: []string{"knee"}, Substitutes: []string{"Leg Press"}},
	{Name: "Smith Machine Squat", Type: Compound, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Back Squat"}},
	{Name: "Romanian Deadlift", Type: Compound, Muscle: "Hamstrings", Secondary: []string{"Glutes"}, NeuralCost: 7, Flags: []string{"lower_back", "hamstring"}, Substitutes: []string{"Leg Curl"}},
	{Name: "Stiff Leg Deadlift", Type: Compound, Muscle: "Hamstrings", Secondary: []string{"Lower Back"}, NeuralCost: 7, Flags: []string{"lower_back", "hamstring"}, Substitutes: []string{"RDL"}},
	{Name: "Single Leg RDL", Type: Unilateral, Muscle: "Hamstrings", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"hamstring"}, Substitutes: []string{"RDL"}},
	{Name: "Leg Curl", Type: Isolation, Muscle: "Hamstrings", Secondary: nil, NeuralCost: 3, Flags: []string{"hamstring"}, Substitutes: []string{"Nordic Curl"}},
	{Name: "Seated Leg Curl", Type: Isolation, Muscle: "Hamstrings", Secondary: nil, NeuralCost: 3, Flags: []string{"hamstring"}, Substitutes: []string{"Lying Leg Curl"}},
	{Name: "Lying Leg Curl", Type: Isolation, Muscle: "Hamstrings", Secondary: nil, NeuralCost: 3, Flags: []string{"hamstring"}, Substitutes: []string{"Seated Leg Curl"}},
	{Name: "Nordic Hamstring Curl", Type: Bodyweight, Muscle: "Hamstrings", Secondary: nil, NeuralCost: 6, Flags: []string{"hamstring"}, Substitutes: []string{"Leg Curl"}},
	{Name: "Good Morning", Type: Compound, Muscle: "Hamstrings", Secondary: []string{"Lower Back"}, NeuralCost: 7, Flags: []string{"lower_back"}, Substitutes: []string{"RDL"}},
	{Name: "Hip Thrust", Type: Compound, Muscle: "Glutes", Secondary: []string{"Hamstrings"}, NeuralCost: 6, Flags: []string{"hip"}, Substitutes: []string{"Glute Bridge"}},
	{Name: "Barbell Hip Thrust", Type: Compound, Muscle: "Glutes", Secondary: []string{"Hamstrings"}, NeuralCost: 7, Flags: []string{"hip"}, Substitutes: []string{"Hip Thrust"}},
	{Name: "Barbell Glute Bridge", Type: Compound, Muscle: "Glutes", Secondary: []string{"Hamstrings"}, NeuralCost: 5, Flags: []string{"hip"}, Substitutes: []string{"Bodyweight Bridge"}},
	{Name: "Single Leg Hip Thrust", Type: Unilateral, Muscle: "Glutes", Secondary: []string{"Hamstrings"}, NeuralCost: 6, Flags: []string{"hip"}, Substitutes: []string{"Hip Thrust"}},
	{Name: "Cable Pull Through", Type: Compound, Muscle: "Glutes", Secondary: []string{"Hamstrings"}, NeuralCost: 5, Flags: []string{"hip"}, Substitutes: []string{"Hip Thrust"}},
	{Name: "Leg Extension", Type: Isolation, Muscle: "Quads", Secondary: nil, NeuralCost: 3, Flags: []string{"knee"}, Substitutes: []string{"Goblet Squat"}},
	{Name: "Single Leg Extension", Type: Isolation, Muscle: "Quads", Secondary: nil, NeuralCost: 3, Flags: []string{"knee"}, Substitutes: []string{"Leg Extension"}},
	{Name: "Step Ups", Type: Unilateral, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 5, Flags: []string{"knee"}, Substitutes: []string{"Lunges"}},
	{Name: "Dumbbell Step Ups", Type: Unilateral, Muscle: "Quads", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee"}, Substitutes: []string{"Step Ups"}},
	{Name: "Calf Raises", Type: Isolation, Muscle: "Calves", Secondary: nil, NeuralCost: 3, Flags: []string{"ankle"}, Substitutes: []string{"Seated Calf Raise"}},
	{Name: "Standing Calf Raises", Type: Isolation, Muscle: "Calves", Secondary: nil, NeuralCost: 3, Flags: []string{"ankle"}, Substitutes: []string{"Seated Calf Raise"}},
	{Name: "Seated Calf Raises", Type: Isolation, Muscle: "Calves", Secondary: nil, NeuralCost: 3, Flags: []string{"ankle"}, Substitutes: []string{"Standing Calf Raise"}},

	// Core
	{Name: "Plank", Type: Iso, Muscle: "Core", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Deadbug"}},
	{Name: "Side Plank", Type: Iso, Muscle: "Obliques", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Russian Twist"}},
	{Name: "Weighted Plank", Type: Iso, Muscle: "Core", Secondary: nil, NeuralCost: 4, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Hanging Leg Raise", Type: Bodyweight, Muscle: "Abs", Secondary: []string{"Hip Flexors"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"Lying Leg Raise"}},
	{Name: "Hanging Knee Raise", Type: Bodyweight, Muscle: "Abs", Secondary: []string{"Hip Flexors"}, NeuralCost: 4, Flags: []string{"shoulder"}, Substitutes: []string{"Lying Leg Raise"}},
	{Name: "Lying Leg Raise", Type: Bodyweight, Muscle: "Abs", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Crunches"}},
	{Name: "Cable Crunch", Type: Isolation, Muscle: "Abs", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Crunch"}},
	{Name: "Crunches", Type: Bodyweight, Muscle: "Abs", Secondary: nil, NeuralCost: 2, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Ab Wheel Rollout", Type: Compound, Muscle: "Core", Secondary: []string{"Shoulders"}, NeuralCost: 6, Flags: []string{"lower_back"}, Substitutes: []string{"Plank"}},
	{Name: "Russian Twist", Type: Isolation, Muscle: "Obliques", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Side Plank"}},
	{Name: "Weighted Russian Twist", Type: Isolation, Muscle: "Obliques", Secondary: nil, NeuralCost: 4, Flags: nil, Substitutes: []string{"Russian Twist"}},
	{Name: "Pallof Press", Type: Iso, Muscle: "Core", Secondary: []string{"Obliques"}, NeuralCost: 4, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Deadbug", Type: Bodyweight, Muscle: "Core", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Bird Dog", Type: Bodyweight, Muscle: "Core", Secondary: []string{"Lower Back"}, NeuralCost: 3, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Mountain Climbers", Type: Bodyweight, Muscle: "Core", Secondary: []string{"Cardio"}, NeuralCost: 4, Flags: nil, Substitutes: []string{"Plank"}},
	{Name: "Bicycle Crunches", Type: Bodyweight, Muscle: "Abs", Secondary: []string{"Obliques"}, NeuralCost: 3, Flags: nil, Substitutes: []string{"Crunches"}},
	{Name: "Woodchoppers", Type: Isolation, Muscle: "Obliques", Secondary: nil, NeuralCost: 3, Flags: nil, Substitutes: []string{"Russian Twist"}},
	{Name: "Landmine Rotation", Type: Compound, Muscle: "Obliques", Secondary: []string{"Core"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"Russian Twist"}},

	// Olympic and Power
	{Name: "Power Clean", Type: Olympic, Muscle: "Full Body", Secondary: []string{"Traps", "Shoulders"}, NeuralCost: 9, Flags: []string{"wrist", "shoulder"}, Substitutes: []string{"Hang Clean"}},
	{Name: "Hang Clean", Type: Olympic, Muscle: "Full Body", Secondary: []string{"Traps"}, NeuralCost: 8, Flags: []string{"wrist"}, Substitutes: []string{"KB Swing"}},
	{Name: "Clean and Jerk", Type: Olympic, Muscle: "Full Body", Secondary: []string{"Shoulders"}, NeuralCost: 10, Flags: []string{"wrist", "shoulder"}, Substitutes: []string{"Power Clean"}},
	{Name: "Snatch", Type: Olympic, Muscle: "Full Body", Secondary: []string{"Shoulders"}, NeuralCost: 10, Flags: []string{"wrist", "shoulder"}, Substitutes: []string{"Power Clean"}},
	{Name: "Hang Snatch", Type: Olympic, Muscle: "Full Body", Secondary: []string{"Shoulders"}, NeuralCost: 9, Flags: []string{"wrist", "shoulder"}, Substitutes: []string{"Hang Clean"}},
	{Name: "Kettlebell Swing", Type: Power, Muscle: "Posterior Chain", Secondary: []string{"Shoulders"}, NeuralCost: 6, Flags: []string{"lower_back"}, Substitutes: []string{"RDL"}},
	{Name: "Kettlebell Snatch", Type: Power, Muscle: "Full Body", Secondary: []string{"Shoulders"}, NeuralCost: 7, Flags: []string{"shoulder"}, Substitutes: []string{"KB Swing"}},
	{Name: "Box Jump", Type: Plyometric, Muscle: "Legs", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee", "ankle"}, Substitutes: []string{"Jump Squat"}},
	{Name: "Depth Jump", Type: Plyometric, Muscle: "Legs", Secondary: []string{"Glutes"}, NeuralCost: 7, Flags: []string{"knee", "ankle"}, Substitutes: []string{"Box Jump"}},
	{Name: "Broad Jump", Type: Plyometric, Muscle: "Legs", Secondary: []string{"Glutes"}, NeuralCost: 6, Flags: []string{"knee", "ankle"}, Substitutes: []string{"Box Jump"}},
	{Name: "Medicine Ball Slam", Type: Power, Muscle: "Full Body", Secondary: []string{"Core"}, NeuralCost: 5, Flags: nil, Substitutes: []string{"KB Swing"}},
	{Name: "Battle Ropes", Type: Power, Muscle: "Shoulders", Secondary: []string{"Core", "Cardio"}, NeuralCost: 5, Flags: []string{"shoulder"}, Substitutes: []string{"KB Swing"}},
}
